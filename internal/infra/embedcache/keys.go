package embedcache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Rajveer-VIT/flight-chatbot-backend/internal/domain/locale"
)

// cacheKey scopes a vector by embedding model and locale so a model change
// never serves stale vectors.
func cacheKey(prefix, model string, loc locale.Locale, question string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(question)))
	return fmt.Sprintf("%s:emb:%s:%s:%s", prefix, model, loc, hex.EncodeToString(sum[:]))
}
