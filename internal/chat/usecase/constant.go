package usecase

const (
	defaultMaxTokens   = 500
	defaultTemperature = 0.7

	// maxAttachmentBytes bounds a decoded image attachment.
	maxAttachmentBytes = 10 << 20
)

// connectionApology replaces the reply when every inference attempt has
// been exhausted. The turn continues; the session never dies on a
// transport failure.
const connectionApology = "I apologize, but I'm having trouble connecting to the AI service at the moment. " +
	"This could be due to:\n" +
	"1. The AI service is not running\n" +
	"2. Network connectivity issues\n" +
	"3. Service configuration problems\n\n" +
	"Please try again in a few moments or contact support if the issue persists."

// snippetHeader introduces retrieved reference text appended to the user
// message.
const snippetHeader = "Reference information from campus documents:"
