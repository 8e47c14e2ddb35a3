package services

import (
	"fmt"
	"strings"

	"ideahub/models"
	"ideahub/repositories"
)

// ChatbotService answers platform questions by keyword matching. It is a
// pure function of the message and the current idea/report stores; there is
// no session or learning state.
type ChatbotService interface {
	Reply(message string) string
}

type chatbotService struct {
	ideaRepo   repositories.IdeaRepository
	reportRepo repositories.ReportRepository
}

func NewChatbotService(ideaRepo repositories.IdeaRepository, reportRepo repositories.ReportRepository) ChatbotService {
	return &chatbotService{
		ideaRepo:   ideaRepo,
		reportRepo: reportRepo,
	}
}

func (s *chatbotService) Reply(message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))

	// Canned rules take precedence over idea lookups.
	for _, rule := range chatRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(msg, keyword) {
				return rule.response
			}
		}
	}

	if idea := s.findMentionedIdea(msg); idea != nil {
		return s.describeIdea(idea, msg)
	}

	return chatFallback
}

// findMentionedIdea returns the first idea whose title appears verbatim in
// the message. No ranking by specificity: a short title can shadow a longer
// one that also matches.
func (s *chatbotService) findMentionedIdea(msg string) *models.Idea {
	ideas, err := s.ideaRepo.GetAll()
	if err != nil {
		return nil
	}

	for i := range ideas {
		title := strings.ToLower(ideas[i].Title)
		if title != "" && strings.Contains(msg, title) {
			return &ideas[i]
		}
	}
	return nil
}

func (s *chatbotService) describeIdea(idea *models.Idea, msg string) string {
	contains := func(keywords ...string) bool {
		for _, keyword := range keywords {
			if strings.Contains(msg, keyword) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("description", "about", "details"):
		return fmt.Sprintf("💡 %s - Description: %s", idea.Title, idea.Description)
	case contains("category", "type"):
		return fmt.Sprintf("💡 %s - Category: %s", idea.Title, idea.Category)
	case contains("upvote", "like"):
		return fmt.Sprintf("💡 %s - Upvotes: %d", idea.Title, len(idea.Upvotes))
	case contains("downvote", "dislike"):
		return fmt.Sprintf("💡 %s - Downvotes: %d", idea.Title, len(idea.Downvotes))
	case contains("report", "problem"):
		return fmt.Sprintf("💡 %s - Reports: %d", idea.Title, s.reportCount(idea.ID))
	default:
		return fmt.Sprintf("💡 %s - Category: %s\nDescription: %s\nUpvotes: %d, Downvotes: %d, Reports: %d",
			idea.Title, idea.Category, idea.Description,
			len(idea.Upvotes), len(idea.Downvotes), s.reportCount(idea.ID))
	}
}

func (s *chatbotService) reportCount(ideaID uint) int {
	reports, err := s.reportRepo.GetByIdeaID(ideaID)
	if err != nil {
		return 0
	}
	return len(reports)
}
