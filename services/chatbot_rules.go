package services

// chatRule maps trigger substrings to one canned response. Rules are
// evaluated in order, first match wins, so earlier rules shadow later ones.
type chatRule struct {
	keywords []string
	response string
}

var chatRules = []chatRule{
	{
		keywords: []string{"how to submit", "submit idea", "submit an idea", "submission", "post idea"},
		response: "To submit an idea, fill out the form with a title, description, category, and optional image 🚀",
	},
	{
		keywords: []string{"report idea", "report", "flag", "problem with idea"},
		response: "To report an idea, open it and click 'Report'. Provide a clear reason for the report.",
	},
	{
		keywords: []string{"edit idea", "update idea", "change idea"},
		response: "You can edit your ideas by clicking the 'Edit' button on your idea card. Update title, description, category, or image.",
	},
	{
		keywords: []string{"vote", "upvote", "downvote", "like", "dislike"},
		response: "You can upvote ⬆️ or downvote ⬇️ ideas by opening them and clicking the respective buttons.",
	},
	{
		// Plural-only triggers: a bare "category"/"type" next to an idea
		// title must fall through to the idea lookup instead.
		keywords: []string{"categories", "types", "idea type"},
		response: "We support categories like Technology, Health, Education, Environment, Finance, Social Impact, and Arts & Media.",
	},
	{
		keywords: []string{"signup", "register", "create account", "new account"},
		response: "Click 'Sign Up' on the homepage and fill in your details to create an account.",
	},
	{
		keywords: []string{"login", "sign in", "access account"},
		response: "Click 'Login' and enter your registered email and password to access your account.",
	},
	{
		keywords: []string{"logout", "sign out", "exit account"},
		response: "Click 'Logout' to safely exit your account.",
	},
	{
		keywords: []string{"forgot password", "reset password", "lost password"},
		response: "If you forgot your password, click 'Forgot Password?' on the login page to reset it.",
	},
	{
		keywords: []string{"delete account", "remove account", "close account"},
		response: "You can delete your account from Settings. This will permanently remove your data.",
	},
	{
		keywords: []string{"developer request", "become developer", "developer access", "apply developer"},
		response: "Send a developer request from your settings page under 'Request Developer Access'. Once approved, your account will be promoted.",
	},
	{
		keywords: []string{"moderation", "admin", "developer review", "manage reports"},
		response: "Admins and developers can review reports under the Reports page.",
	},
	{
		keywords: []string{"chatbot", "help", "support", "assistant", "guide"},
		response: "I'm here to help! You can ask about submitting ideas, voting, categories, account issues, or developer requests.",
	},
	{
		keywords: []string{"hello", "hi", "hey", "greetings"},
		response: "Hello! How can I assist you with your ideas or account today?",
	},
	{
		keywords: []string{"thanks", "thank you", "thx"},
		response: "You're welcome! 😊 Happy to help.",
	},
	{
		keywords: []string{"bye", "goodbye", "see you"},
		response: "Goodbye! Feel free to come back anytime for help or to submit ideas.",
	},
}

const chatFallback = "I'm here to help! You can ask about any idea by name or ask general questions " +
	"about submitting ideas, voting, categories, account actions, or developer requests."
