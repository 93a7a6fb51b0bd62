package resource

import (
	"context"

	"Karyatra/be/internal/db"

	"github.com/lib/pq"
)

type RepositoryImpl struct {
	db *db.KDb
}

func NewRepositoryImpl(db *db.KDb) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

// curatedByKeywords ranks rows by 2 points per tag match plus 1 point per
// keyword appearing in the title, ties broken by rating. The score lives in
// ORDER BY so the row shape stays the plain resource columns.
const curatedByKeywords = `
SELECT * FROM resource
WHERE skill ILIKE '%' || $1 || '%' AND active
ORDER BY
    2 * (SELECT count(*) FROM unnest(tags) tag WHERE tag = ANY($2))
    + (SELECT count(*) FROM unnest($2::text[]) kw WHERE title ILIKE '%' || kw || '%') DESC,
    rating DESC
LIMIT $3`

const curatedByRating = `
SELECT * FROM resource
WHERE skill ILIKE '%' || $1 || '%' AND active
ORDER BY rating DESC, added_at DESC
LIMIT $2`

func (r *RepositoryImpl) FindCurated(ctx context.Context, skill string, keywords []string, limit int) ([]Resource, error) {
	var resources []Resource
	var err error
	if len(keywords) > 0 {
		err = r.db.SelectContext(ctx, &resources, curatedByKeywords, skill, pq.Array(keywords), limit)
	} else {
		err = r.db.SelectContext(ctx, &resources, curatedByRating, skill, limit)
	}
	return resources, err
}

func (r *RepositoryImpl) Insert(ctx context.Context, res *Resource) (int64, error) {
	const query = `
INSERT INTO resource (skill, title, url, description, source, resource_type, tags, level, rating, num_ratings, active, added_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`
	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		res.Skill, res.Title, res.URL, res.Description, res.Source, res.ResourceType,
		res.Tags, res.Level, res.Rating, res.NumRatings, res.Active, res.AddedAt,
	).Scan(&id)
	return id, err
}

func (r *RepositoryImpl) InsertFeedback(ctx context.Context, f *Feedback) error {
	const query = `
INSERT INTO resource_feedback (resource_id, user_id, rating, helpful, comments, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		f.ResourceID, f.UserID, f.Rating, f.Helpful, f.Comments, f.CreatedAt)
	return err
}

// ApplyRating recomputes the running average in one UPDATE so concurrent
// feedback on the same resource cannot lose updates.
func (r *RepositoryImpl) ApplyRating(ctx context.Context, resourceID int64, rating int) error {
	const query = `
UPDATE resource
SET rating = (rating * num_ratings + $2) / (num_ratings + 1),
    num_ratings = num_ratings + 1
WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, resourceID, rating)
	return err
}
