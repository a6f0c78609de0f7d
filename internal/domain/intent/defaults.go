package intent

// DefaultGreetings is the small-talk list answered without a model call.
var DefaultGreetings = []string{
	"hi", "hello", "hey", "thanks", "thank you", "good morning", "good evening",
	"how are you", "how r u", "bye", "ok", "okay",
	"مرحبا", "اهلا", "أهلا", "السلام عليكم", "شكرا", "صباح الخير", "مساء الخير",
}

// DefaultBlockTerms are clearly non-flight topics. They match whole words,
// so inflected forms are listed explicitly.
var DefaultBlockTerms = []string{
	"food", "foods", "recipe", "recipes", "cook", "cooking", "restaurant", "restaurants",
	"movie", "movies", "film", "films", "song", "songs", "music",
	"politics", "political", "prime minister", "pm", "weather",
	"football", "cricket", "sport", "sports", "math", "maths", "history", "science",
	"stock", "stocks", "share", "shares", "bitcoin", "bank", "banks", "banking",
	"salary", "salaries", "job", "jobs",
	"طعام", "وصفة", "مطعم", "فيلم", "أغنية", "موسيقى", "طقس",
	"كرة القدم", "رياضة", "أسهم", "بيتكوين", "راتب", "وظيفة",
}

// DefaultAllowTerms are flight-domain words that always override a block.
var DefaultAllowTerms = []string{
	"flight", "book", "booking", "pnr", "ticket", "airline", "baggage",
	"refund", "schedule", "airport", "departure", "arrival", "return",
	"cheap flights", "fare",
	"رحلة", "رحلات", "طيران", "حجز", "تذكرة", "مطار", "أمتعة", "استرداد", "مغادرة", "وصول",
}
