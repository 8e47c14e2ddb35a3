package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ideahub/models"
	"ideahub/repositories"
)

func newTestChatbot(t *testing.T) (ChatbotService, repositories.IdeaRepository, repositories.ReportRepository) {
	t.Helper()
	dir := t.TempDir()
	ideaRepo := repositories.NewIdeaRepository(filepath.Join(dir, "ideas.json"))
	reportRepo := repositories.NewReportRepository(filepath.Join(dir, "reports.json"))
	return NewChatbotService(ideaRepo, reportRepo), ideaRepo, reportRepo
}

func seedIdea(t *testing.T, repo repositories.IdeaRepository) {
	t.Helper()
	require.NoError(t, repo.Create(&models.Idea{
		UserID:      1,
		Title:       "Solar Garden",
		Description: "Shared solar panels for the neighborhood",
		Category:    "Environment",
		Upvotes:     []uint{2, 3},
		Downvotes:   []uint{4},
	}))
}

func TestChatbotMatchesSubmissionRule(t *testing.T) {
	bot, _, _ := newTestChatbot(t)

	reply := bot.Reply("How do I submit an idea?")
	require.Equal(t, "To submit an idea, fill out the form with a title, description, category, and optional image 🚀", reply)
}

func TestChatbotRulesAreOrderSensitive(t *testing.T) {
	bot, _, _ := newTestChatbot(t)

	// "report idea" also contains "report"; the first rule in order wins
	reply := bot.Reply("how do I report idea abuse")
	require.Equal(t, chatRules[1].response, reply)
}

func TestChatbotIdeaCategoryLookup(t *testing.T) {
	bot, ideaRepo, _ := newTestChatbot(t)
	seedIdea(t, ideaRepo)

	reply := bot.Reply("What category is Solar Garden in?")
	require.Equal(t, "💡 Solar Garden - Category: Environment", reply)
}

func TestChatbotIdeaDescriptionLookup(t *testing.T) {
	bot, ideaRepo, _ := newTestChatbot(t)
	seedIdea(t, ideaRepo)

	reply := bot.Reply("tell me more about solar garden")
	require.Equal(t, "💡 Solar Garden - Description: Shared solar panels for the neighborhood", reply)
}

func TestChatbotIdeaSummaryIncludesStoredReportCount(t *testing.T) {
	bot, ideaRepo, reportRepo := newTestChatbot(t)
	seedIdea(t, ideaRepo)

	// The original always reported zero here because reports were never
	// attached to the loaded idea; the count now comes from the report
	// store itself.
	require.NoError(t, reportRepo.Create(&models.Report{IdeaID: 1, Description: "spam"}))

	reply := bot.Reply("solar garden")
	require.Equal(t,
		"💡 Solar Garden - Category: Environment\n"+
			"Description: Shared solar panels for the neighborhood\n"+
			"Upvotes: 2, Downvotes: 1, Reports: 1",
		reply)
}

func TestChatbotFallback(t *testing.T) {
	bot, ideaRepo, _ := newTestChatbot(t)
	seedIdea(t, ideaRepo)

	reply := bot.Reply("tell me about quantum turnips")
	require.Equal(t, chatFallback, reply)
}

func TestChatbotEmptyTitleNeverMatches(t *testing.T) {
	bot, ideaRepo, _ := newTestChatbot(t)
	require.NoError(t, ideaRepo.Create(&models.Idea{UserID: 1, Title: ""}))

	reply := bot.Reply("anything at all really")
	require.Equal(t, chatFallback, reply)
}
