package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ideahub/models"
)

func TestNextIdeaID(t *testing.T) {
	require.Equal(t, uint(1), nextIdeaID(nil))
	require.Equal(t, uint(1), nextIdeaID([]models.Idea{}))

	require.Equal(t, uint(8), nextIdeaID([]models.Idea{{ID: 3}, {ID: 7}}))
	// Order must not matter
	require.Equal(t, uint(8), nextIdeaID([]models.Idea{{ID: 7}, {ID: 3}}))
}

func TestNextReportID(t *testing.T) {
	require.Equal(t, uint(1), nextReportID(nil))
	require.Equal(t, uint(8), nextReportID([]models.Report{{ID: 7}, {ID: 3}}))
}

func TestIdeaRepositoryCreateAssignsIDs(t *testing.T) {
	repo := NewIdeaRepository(filepath.Join(t.TempDir(), "ideas.json"))

	first := &models.Idea{Title: "First"}
	require.NoError(t, repo.Create(first))
	require.Equal(t, uint(1), first.ID)

	second := &models.Idea{Title: "Second"}
	require.NoError(t, repo.Create(second))
	require.Equal(t, uint(2), second.ID)

	// Deleting the latest idea frees its id for reuse; ids of survivors
	// below the max stay unique.
	require.NoError(t, repo.Delete(2))
	third := &models.Idea{Title: "Third"}
	require.NoError(t, repo.Create(third))
	require.Equal(t, uint(2), third.ID)
}

func TestIdeaRepositoryGetByID(t *testing.T) {
	repo := NewIdeaRepository(filepath.Join(t.TempDir(), "ideas.json"))

	require.NoError(t, repo.Create(&models.Idea{Title: "Findable"}))

	idea, err := repo.GetByID(1)
	require.NoError(t, err)
	require.Equal(t, "Findable", idea.Title)

	_, err = repo.GetByID(99)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIdeaRepositoryModify(t *testing.T) {
	repo := NewIdeaRepository(filepath.Join(t.TempDir(), "ideas.json"))

	require.NoError(t, repo.Create(&models.Idea{Title: "Before"}))

	updated, err := repo.Modify(1, func(i *models.Idea) error {
		i.Title = "After"
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "After", updated.Title)

	persisted, err := repo.GetByID(1)
	require.NoError(t, err)
	require.Equal(t, "After", persisted.Title)

	_, err = repo.Modify(99, func(i *models.Idea) error { return nil })
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIdeaRepositoryDeleteMissing(t *testing.T) {
	repo := NewIdeaRepository(filepath.Join(t.TempDir(), "ideas.json"))
	require.ErrorIs(t, repo.Delete(1), ErrNotFound)
}

func TestJSONFileCorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ideas.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewIdeaRepository(path)
	ideas, err := repo.GetAll()
	require.NoError(t, err)
	require.Empty(t, ideas)
}

func TestReportRepositoryDeleteByIdeaID(t *testing.T) {
	repo := NewReportRepository(filepath.Join(t.TempDir(), "reports.json"))

	require.NoError(t, repo.Create(&models.Report{IdeaID: 1, Description: "a"}))
	require.NoError(t, repo.Create(&models.Report{IdeaID: 2, Description: "b"}))
	require.NoError(t, repo.Create(&models.Report{IdeaID: 1, Description: "c"}))

	require.NoError(t, repo.DeleteByIdeaID(1))

	remaining, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, uint(2), remaining[0].IdeaID)

	// Cascading over an idea with no reports is not an error
	require.NoError(t, repo.DeleteByIdeaID(42))
}
