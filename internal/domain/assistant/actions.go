package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/flight"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/infra/llm/chatgpt"
	apperrors "github.com/Rajveer-VIT/flight-chatbot-backend/pkg/errors"
)

// Action names the closed set of tools the model may call.
type Action string

const (
	ActionSearchFlights Action = "search_flights"
	ActionBookFlight    Action = "book_flight"
)

type actionHandler func(ctx context.Context, loc locale.Locale, arguments string) (Envelope, error)

func toolSchema() []chatgpt.Tool {
	return []chatgpt.Tool{
		{
			Type: "function",
			Function: chatgpt.ToolFunction{
				Name:        string(ActionSearchFlights),
				Description: "Search flights between two cities",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"from_city": map[string]any{"type": "string"},
						"to_city":   map[string]any{"type": "string"},
					},
					"required": []string{"from_city", "to_city"},
				},
			},
		},
		{
			Type: "function",
			Function: chatgpt.ToolFunction{
				Name:        string(ActionBookFlight),
				Description: "Book a flight using its ID and passenger name",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"flight_id":      map[string]any{"type": "integer"},
						"passenger_name": map[string]any{"type": "string"},
					},
					"required": []string{"flight_id", "passenger_name"},
				},
			},
		},
	}
}

func (o *Orchestrator) dispatch(ctx context.Context, loc locale.Locale, call chatgpt.ToolCall) (Envelope, error) {
	handler, ok := o.actions[Action(call.Function.Name)]
	if !ok {
		return Envelope{}, apperrors.Wrap(apperrors.CodeUnknownAction, fmt.Sprintf("unknown action %q", call.Function.Name), nil)
	}
	return handler(ctx, loc, call.Function.Arguments)
}

func (o *Orchestrator) handleSearch(ctx context.Context, _ locale.Locale, arguments string) (Envelope, error) {
	var args flight.SearchArgs
	if err := decodeArguments(arguments, &args); err != nil {
		return Envelope{}, err
	}
	args.FromCity = strings.TrimSpace(args.FromCity)
	args.ToCity = strings.TrimSpace(args.ToCity)
	if args.FromCity == "" || args.ToCity == "" {
		return Envelope{}, apperrors.Wrap(apperrors.CodeMalformedArguments, "from_city and to_city are required", nil)
	}
	return o.search(ctx, args, SourceAITool)
}

func (o *Orchestrator) handleBook(ctx context.Context, loc locale.Locale, arguments string) (Envelope, error) {
	var args flight.BookArgs
	if err := decodeArguments(arguments, &args); err != nil {
		return Envelope{}, err
	}
	args.PassengerName = strings.TrimSpace(args.PassengerName)
	if args.FlightID <= 0 || args.PassengerName == "" {
		return Envelope{}, apperrors.Wrap(apperrors.CodeMalformedArguments, "flight_id and passenger_name are required", nil)
	}
	result := o.booker.BookFlight(ctx, args)
	if result.Ticket != nil {
		return Envelope{Answer: flight.RenderTicket(loc, *result.Ticket), Source: SourceBooking}, nil
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return Envelope{}, apperrors.Wrap(apperrors.CodeUpstream, "encode booking result", err)
	}
	return Envelope{Answer: string(payload), Source: SourceAITool}, nil
}

func (o *Orchestrator) search(ctx context.Context, args flight.SearchArgs, source Source) (Envelope, error) {
	result := o.searcher.SearchFlights(ctx, args)
	if result.Failed() {
		o.logger.Warn("flight search returned an error payload", "source", source, "from", args.FromCity, "to", args.ToCity, "error", result.Error)
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return Envelope{}, apperrors.Wrap(apperrors.CodeUpstream, "encode search result", err)
	}
	return Envelope{Answer: string(payload), Source: source}, nil
}

func decodeArguments(arguments string, out any) error {
	raw := strings.TrimSpace(arguments)
	if raw == "" {
		return apperrors.Wrap(apperrors.CodeMalformedArguments, "empty tool arguments", nil)
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	if err := dec.Decode(out); err != nil {
		return apperrors.Wrap(apperrors.CodeMalformedArguments, "decode tool arguments", err)
	}
	return nil
}
