package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"blogapi/internal/auth"
	"blogapi/internal/models"
	"blogapi/internal/repository"
	"blogapi/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Options controls how much demo content a run produces.
type Options struct {
	Users   int
	Posts   int
	MaxDays int // spread created_at over this many days back
}

// Factory builds demo entities. Posts go through the real service layer so
// derived fields come out the same way they would in production.
type Factory struct {
	db    *gorm.DB
	posts *service.PostService
	rng   *rand.Rand
	opts  Options
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())

	postRepo := repository.NewPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)

	if opts.Users <= 0 {
		opts.Users = 5
	}
	if opts.Posts <= 0 {
		opts.Posts = 40
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}

	return &Factory{
		db:    db,
		posts: service.NewPostService(postRepo, categoryRepo, tagRepo),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		opts:  opts,
	}
}

// CreateUser persists a fake user. All demo users share the default
// password so any of them can be logged in with.
func (f *Factory) CreateUser(ctx context.Context) (*models.User, error) {
	hash, err := auth.HashPassword(DefaultUserPassword)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    fmt.Sprintf("%s-%s", gofakeit.LetterN(4), gofakeit.Email()),
		Password: hash,
	}
	if err := f.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateCategory persists a category with the given name, reusing an
// existing one on a name collision.
func (f *Factory) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{Name: name}
	err := f.db.WithContext(ctx).
		Where("normalized_name = ?", models.NormalizeName(name)).
		FirstOrCreate(category).Error
	if err != nil {
		return nil, err
	}
	return category, nil
}

// CreateTag persists a tag with the given name, reusing an existing one on
// a name collision.
func (f *Factory) CreateTag(ctx context.Context, name string) (*models.Tag, error) {
	tag := &models.Tag{Name: name}
	err := f.db.WithContext(ctx).
		Where("normalized_name = ?", models.NormalizeName(name)).
		FirstOrCreate(tag).Error
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// CreatePost creates a post through the service layer, then backdates its
// creation time for a realistic listing spread.
func (f *Factory) CreatePost(ctx context.Context, author *models.User, category *models.Category, tags []*models.Tag) (*models.Post, error) {
	status := models.PostStatusPublished
	if f.rng.Intn(4) == 0 {
		status = models.PostStatusDraft
	}

	tagIDs := make([]uuid.UUID, 0, len(tags))
	for _, t := range tags {
		tagIDs = append(tagIDs, t.ID)
	}

	post, err := f.posts.CreatePost(ctx, author.ID, service.CreatePostInput{
		Title:      gofakeit.Sentence(6),
		Content:    gofakeit.Paragraph(3, 5, 30, "\n\n"),
		Status:     status,
		CategoryID: category.ID,
		TagIDs:     tagIDs,
	})
	if err != nil {
		return nil, err
	}

	daysBack := f.rng.Intn(f.opts.MaxDays)
	hoursBack := f.rng.Intn(24)
	createdAt := time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
	if err := f.db.WithContext(ctx).Model(post).UpdateColumn("created_at", createdAt).Error; err != nil {
		return nil, err
	}
	post.CreatedAt = createdAt
	return post, nil
}

var demoCategories = []string{
	"Technology", "Programming", "Web Development", "Databases", "DevOps",
}

var demoTags = []string{
	"go", "tutorial", "opinion", "performance", "testing", "architecture", "security",
}

// Run populates the database with demo users, categories, tags and posts.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	f := NewFactory(db, opts)

	defaultUser, err := EnsureDefaultUser(ctx, db)
	if err != nil {
		return err
	}

	users := []*models.User{defaultUser}
	for i := 1; i < f.opts.Users; i++ {
		u, err := f.CreateUser(ctx)
		if err != nil {
			return err
		}
		users = append(users, u)
	}

	categories := make([]*models.Category, 0, len(demoCategories))
	for _, name := range demoCategories {
		c, err := f.CreateCategory(ctx, name)
		if err != nil {
			return err
		}
		categories = append(categories, c)
	}

	tags := make([]*models.Tag, 0, len(demoTags))
	for _, name := range demoTags {
		t, err := f.CreateTag(ctx, name)
		if err != nil {
			return err
		}
		tags = append(tags, t)
	}

	for i := 0; i < f.opts.Posts; i++ {
		author := users[f.rng.Intn(len(users))]
		category := categories[f.rng.Intn(len(categories))]

		picked := make([]*models.Tag, 0, 3)
		for _, idx := range f.rng.Perm(len(tags))[:f.rng.Intn(4)] {
			picked = append(picked, tags[idx])
		}

		if _, err := f.CreatePost(ctx, author, category, picked); err != nil {
			return err
		}
	}

	return nil
}
