package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"ideahub/models"
	"ideahub/repositories"
)

type IdeaService interface {
	List(params models.IdeaListParams) ([]models.Idea, error)
	Create(userID uint, req models.CreateIdeaRequest, image *multipart.FileHeader) (*models.Idea, error)
	Vote(ideaID, userID uint, voteType string) (*models.Idea, error)
	Report(ideaID, userID uint, description string) (*models.Report, error)
	ListReports(ideaID uint) ([]models.ReportSummary, error)
	Edit(ideaID, userID uint, req models.EditIdeaRequest, image *multipart.FileHeader) (*models.Idea, error)
	InlineEdit(ideaID, userID uint, description string) error
	Delete(ideaID, userID uint, accountType string) error
	DeleteReport(reportID uint) error
	ModerationView() ([]models.ModeratedIdea, error)
}

type ideaService struct {
	ideaRepo   repositories.IdeaRepository
	reportRepo repositories.ReportRepository
	uploadDir  string
}

func NewIdeaService(ideaRepo repositories.IdeaRepository, reportRepo repositories.ReportRepository, uploadDir string) IdeaService {
	return &ideaService{
		ideaRepo:   ideaRepo,
		reportRepo: reportRepo,
		uploadDir:  uploadDir,
	}
}

func (s *ideaService) List(params models.IdeaListParams) ([]models.Idea, error) {
	ideas, err := s.ideaRepo.GetAll()
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(params.Search)
	category := strings.ToLower(params.Category)

	filtered := []models.Idea{}
	for _, idea := range ideas {
		if search != "" &&
			!strings.Contains(strings.ToLower(idea.Title), search) &&
			!strings.Contains(strings.ToLower(idea.Description), search) {
			continue
		}
		if category != "" && category != "all" && strings.ToLower(idea.Category) != category {
			continue
		}
		filtered = append(filtered, idea)
	}

	switch strings.ToLower(params.Sort) {
	case "newest":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ID > filtered[j].ID
		})
	case "popular":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Score() > filtered[j].Score()
		})
	case "trending":
		sort.SliceStable(filtered, func(i, j int) bool {
			return len(filtered[i].Upvotes) > len(filtered[j].Upvotes)
		})
	}
	// Unrecognized sort keeps the stored order.

	return filtered, nil
}

func (s *ideaService) Create(userID uint, req models.CreateIdeaRequest, image *multipart.FileHeader) (*models.Idea, error) {
	idea := &models.Idea{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Upvotes:     []uint{},
		Downvotes:   []uint{},
	}

	if err := s.ideaRepo.Create(idea); err != nil {
		return nil, err
	}

	// The upload is named after the assigned id, so it can only be stored
	// once the idea exists.
	if image != nil && image.Filename != "" {
		imageURL, err := s.saveImage(image, idea.ID)
		if err != nil {
			return nil, err
		}
		return s.ideaRepo.Modify(idea.ID, func(i *models.Idea) error {
			i.ImageURL = imageURL
			return nil
		})
	}

	return idea, nil
}

// Vote toggles the user's vote: casting the same vote twice retracts it,
// casting the opposite vote switches it. A user id is never in both sets.
func (s *ideaService) Vote(ideaID, userID uint, voteType string) (*models.Idea, error) {
	idea, err := s.ideaRepo.Modify(ideaID, func(i *models.Idea) error {
		switch voteType {
		case "upvote":
			if hasVote(i.Upvotes, userID) {
				i.Upvotes = withoutVote(i.Upvotes, userID)
			} else {
				i.Downvotes = withoutVote(i.Downvotes, userID)
				i.Upvotes = append(i.Upvotes, userID)
			}
		case "downvote":
			if hasVote(i.Downvotes, userID) {
				i.Downvotes = withoutVote(i.Downvotes, userID)
			} else {
				i.Upvotes = withoutVote(i.Upvotes, userID)
				i.Downvotes = append(i.Downvotes, userID)
			}
		}
		// Any other voteType leaves the idea untouched.
		return nil
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrIdeaNotFound
	}
	return idea, err
}

func (s *ideaService) Report(ideaID, userID uint, description string) (*models.Report, error) {
	idea, err := s.ideaRepo.GetByID(ideaID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, err
	}

	report := &models.Report{
		IdeaID:      ideaID,
		IdeaTitle:   idea.Title,
		UserID:      userID,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.reportRepo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ideaService) ListReports(ideaID uint) ([]models.ReportSummary, error) {
	reports, err := s.reportRepo.GetByIdeaID(ideaID)
	if err != nil {
		return nil, err
	}

	summaries := []models.ReportSummary{}
	for _, report := range reports {
		summaries = append(summaries, models.ReportSummary{
			ID:          report.ID,
			Description: report.Description,
			CreatedAt:   report.CreatedAt,
		})
	}
	return summaries, nil
}

// Edit updates title, description, category, and optionally the image.
// A missing idea and a foreign idea produce the same error, so callers
// cannot probe other users' ideas.
func (s *ideaService) Edit(ideaID, userID uint, req models.EditIdeaRequest, image *multipart.FileHeader) (*models.Idea, error) {
	current, err := s.ideaRepo.GetByID(ideaID)
	if err != nil || current.UserID != userID {
		return nil, ErrNotOwner
	}

	imageURL := ""
	if image != nil && image.Filename != "" {
		imageURL, err = s.saveImage(image, ideaID)
		if err != nil {
			return nil, err
		}
	} else if url := strings.TrimSpace(req.ImageURL); url != "" {
		imageURL = url
	}

	idea, err := s.ideaRepo.Modify(ideaID, func(i *models.Idea) error {
		if i.UserID != userID {
			return ErrNotOwner
		}
		i.Title = strings.TrimSpace(req.Title)
		i.Description = strings.TrimSpace(req.Description)
		i.Category = strings.TrimSpace(req.Category)
		if imageURL != "" {
			i.ImageURL = imageURL
		}
		return nil
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotOwner
	}
	return idea, err
}

func (s *ideaService) InlineEdit(ideaID, userID uint, description string) error {
	_, err := s.ideaRepo.Modify(ideaID, func(i *models.Idea) error {
		if i.UserID != userID {
			return ErrNotOwner
		}
		i.Description = description
		return nil
	})
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotOwner
	}
	return err
}

// Delete removes the idea and cascades to its reports. Only the owner or a
// developer/admin may delete.
func (s *ideaService) Delete(ideaID, userID uint, accountType string) error {
	idea, err := s.ideaRepo.GetByID(ideaID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrIdeaNotFound
		}
		return err
	}

	if idea.UserID != userID &&
		accountType != string(models.TierDeveloper) &&
		accountType != string(models.TierAdmin) {
		return ErrUnauthorized
	}

	if err := s.ideaRepo.Delete(ideaID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrIdeaNotFound
		}
		return err
	}
	return s.reportRepo.DeleteByIdeaID(ideaID)
}

func (s *ideaService) DeleteReport(reportID uint) error {
	err := s.reportRepo.Delete(reportID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrReportNotFound
	}
	return err
}

// ModerationView returns every idea with its reports attached, reports
// newest first.
func (s *ideaService) ModerationView() ([]models.ModeratedIdea, error) {
	ideas, err := s.ideaRepo.GetAll()
	if err != nil {
		return nil, err
	}
	reports, err := s.reportRepo.GetAll()
	if err != nil {
		return nil, err
	}

	moderated := []models.ModeratedIdea{}
	for _, idea := range ideas {
		ideaReports := []models.Report{}
		for _, report := range reports {
			if report.IdeaID == idea.ID {
				ideaReports = append(ideaReports, report)
			}
		}
		sort.SliceStable(ideaReports, func(i, j int) bool {
			return ideaReports[i].CreatedAt.After(ideaReports[j].CreatedAt)
		})
		moderated = append(moderated, models.ModeratedIdea{
			Idea:        idea,
			ReportCount: len(ideaReports),
			Reports:     ideaReports,
		})
	}
	return moderated, nil
}

// saveImage stores the upload as idea-<id><ext> and returns its public path.
// Re-uploading with a different extension leaves the old file behind.
func (s *ideaService) saveImage(header *multipart.FileHeader, ideaID uint) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("idea-%d%s", ideaID, filepath.Ext(header.Filename))
	dst, err := os.Create(filepath.Join(s.uploadDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/images/" + filename, nil
}

func hasVote(votes []uint, userID uint) bool {
	for _, id := range votes {
		if id == userID {
			return true
		}
	}
	return false
}

func withoutVote(votes []uint, userID uint) []uint {
	kept := make([]uint, 0, len(votes))
	for _, id := range votes {
		if id != userID {
			kept = append(kept, id)
		}
	}
	return kept
}
