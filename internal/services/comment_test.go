package services

import (
	"context"
	"testing"

	"istanfix/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentRejectsWhitespaceContent(t *testing.T) {
	f := setupReportFixture(t)
	svc := NewCommentService(f.db)
	ctx := context.Background()

	row := f.createReport(t)

	_, err := svc.Create(ctx, actorFor(f.user), row.ID, "   \t\n ")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Comment content cannot be empty.", ve.Message)
}

func TestCreateCommentOnMissingReport(t *testing.T) {
	f := setupReportFixture(t)
	svc := NewCommentService(f.db)
	ctx := context.Background()

	_, err := svc.Create(ctx, actorFor(f.user), 9999, "hello")
	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
}

func TestCommentsListedOldestFirst(t *testing.T) {
	f := setupReportFixture(t)
	svc := NewCommentService(f.db)
	ctx := context.Background()

	row := f.createReport(t)

	first, err := svc.Create(ctx, actorFor(f.user), row.ID, "first")
	require.NoError(t, err)
	assert.Equal(t, "Citizen", first.UserName)

	second, err := svc.Create(ctx, actorFor(f.gov), row.ID, "  second  ")
	require.NoError(t, err)
	assert.Equal(t, "second", second.Content, "content is stored trimmed")

	rows, err := svc.ListByReport(ctx, row.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, second.ID, rows[1].ID)
}

func TestDeleteCommentPermissions(t *testing.T) {
	f := setupReportFixture(t)
	svc := NewCommentService(f.db)
	ctx := context.Background()

	stranger := insertUser(t, f.db, "Stranger", "stranger@example.com", models.RoleUser)
	row := f.createReport(t)

	comment, err := svc.Create(ctx, actorFor(f.user), row.ID, "needs fixing")
	require.NoError(t, err)

	err = svc.Delete(ctx, actorFor(stranger), comment.ID)
	require.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Delete(ctx, actorFor(f.user), comment.ID), "author may delete their comment")

	var nfe *NotFoundError
	err = svc.Delete(ctx, actorFor(f.user), comment.ID)
	require.ErrorAs(t, err, &nfe)
}

func TestCommentsCascadeOnReportDeletion(t *testing.T) {
	f := setupReportFixture(t)
	svc := NewCommentService(f.db)
	ctx := context.Background()

	row := f.createReport(t)
	_, err := svc.Create(ctx, actorFor(f.user), row.ID, "gone soon")
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, actorFor(f.user), row.ID))

	count, err := f.db.NewSelect().Model((*models.Comment)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCommentsCascadeOnUserDeletion(t *testing.T) {
	f := setupReportFixture(t)
	svc := NewCommentService(f.db)
	ctx := context.Background()

	row := f.createReport(t)
	_, err := svc.Create(ctx, actorFor(f.gov), row.ID, "on it")
	require.NoError(t, err)

	_, err = f.db.NewDelete().Model((*models.User)(nil)).Where("id = ?", f.gov.ID).Exec(ctx)
	require.NoError(t, err)

	count, err := f.db.NewSelect().Model((*models.Comment)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "deleting a user removes their comments")
}
