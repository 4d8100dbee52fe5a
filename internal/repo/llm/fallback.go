package llm

import (
	"hash/fnv"
	"strings"
)

// FallbackRating derives a stable pseudo-random rating in [5.0, 9.0] from the
// title, so the same title always falls back to the same value.
func FallbackRating(title string) float64 {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(title))))
	return 5.0 + float64(h.Sum32()%41)/10.0
}

type cannedReply struct {
	keywords []string
	reply    string
}

var cannedReplies = []cannedReply{
	{
		keywords: []string{"payment", "payout", "paid", "revenue", "earning"},
		reply:    "Payouts are processed monthly to your registered PayPal email. You can track earnings and pending payouts on the Earnings page.",
	},
	{
		keywords: []string{"roku", "distribution", "apple tv", "firetv", "platform"},
		reply:    "You can register a distribution channel from the Distribution page. New channels start as Pending until an admin approves them.",
	},
	{
		keywords: []string{"password", "reset", "login", "sign in"},
		reply:    "Use the password reset option on the login page. An admin will review your request and set a new password for you.",
	},
	{
		keywords: []string{"suspend", "banned", "status", "account"},
		reply:    "Account status changes are handled by the admin team. Please open a support ticket if you believe your status is incorrect.",
	},
	{
		keywords: []string{"channel", "movie", "series", "content"},
		reply:    "Channel and content assignments are managed by your account admin. You can see your current channels on the Dashboard.",
	},
}

const defaultReply = "Thanks for reaching out. Please open a support ticket with the details and our team will get back to you shortly."

// FallbackReply is the rule-based substitute when the model call fails.
func FallbackReply(message string) string {
	lower := strings.ToLower(message)
	for _, c := range cannedReplies {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.reply
			}
		}
	}
	return defaultReply
}
