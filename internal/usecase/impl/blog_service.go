package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"solarsavers/internal/domain/entity"
	"solarsavers/internal/domain/repository"
	"solarsavers/internal/domain/service"
	"solarsavers/internal/usecase"
	"solarsavers/internal/validation"

	"github.com/google/uuid"
)

// blogService implements the BlogUsecase interface.
type blogService struct {
	gw        *Gateway
	validator *validation.Validator
	notifier  service.Notifier
	logger    *slog.Logger

	admin *ListResource[entity.Blog]
}

// NewBlogService is the constructor for blogService.
func NewBlogService(
	gw *Gateway,
	session usecase.SessionUsecase,
	validator *validation.Validator,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.BlogUsecase {
	srv := &blogService{
		gw:        gw,
		validator: validator,
		notifier:  notifier,
		logger:    logger,
	}
	srv.admin = NewListResource(func(ctx context.Context) ([]entity.Blog, bool, error) {
		return read(ctx, gw, bearer("admin blogs"), func(src repository.DataSource, token string) ([]entity.Blog, error) {
			return src.AdminBlogs(ctx, token)
		})
	})
	closeOnSessionChange(session, srv.admin)

	return srv
}

func (srv *blogService) PublicBlogs(ctx context.Context) ([]entity.Blog, error) {
	blogs, _, err := read(ctx, srv.gw, public("public blogs"), func(src repository.DataSource, _ string) ([]entity.Blog, error) {
		return src.PublicBlogs(ctx)
	})
	if err != nil {
		srv.notifier.Error("Failed to load blogs")

		return nil, err
	}

	return blogs, nil
}

func (srv *blogService) AdminBlogs(ctx context.Context) ([]entity.Blog, error) {
	blogs, err := srv.admin.Load(ctx)
	if err != nil {
		srv.notifier.Error("Failed to load blogs")

		return nil, err
	}

	return blogs, nil
}

func (srv *blogService) Save(ctx context.Context, id string, in entity.BlogInput) (usecase.Outcome, error) {
	if err := srv.validator.Validate(in); err != nil {
		srv.notifier.Error("Please fill all required fields")

		return usecase.Outcome{}, err
	}
	if in.Tags == nil {
		in.Tags = []string{}
	}

	if id == "" {
		return srv.create(ctx, in)
	}

	return srv.update(ctx, id, in)
}

func (srv *blogService) create(ctx context.Context, in entity.BlogInput) (usecase.Outcome, error) {
	var created *entity.Blog
	outcome, err := write(ctx, srv.gw, bearer("create blog"), func(src repository.DataSource, token string) error {
		b, err := src.CreateBlog(ctx, token, in)
		created = b

		return err
	})
	if err != nil {
		srv.notifier.Error("Failed to save blog")

		return outcome, err
	}

	if created == nil {
		now := time.Now().UTC().Format(time.RFC3339)
		b := in.ApplyTo(entity.Blog{ID: "blog-" + uuid.NewString(), AuthorName: "Admin", CreatedAt: now})
		b.UpdatedAt = now
		created = &b
	}
	blog := *created
	srv.admin.Apply(func(items []entity.Blog) []entity.Blog {
		return append([]entity.Blog{blog}, items...)
	})
	srv.notifier.Success(outcome.Label("Blog created successfully"))

	return outcome, nil
}

func (srv *blogService) update(ctx context.Context, id string, in entity.BlogInput) (usecase.Outcome, error) {
	var updated *entity.Blog
	outcome, err := write(ctx, srv.gw, bearer("update blog"), func(src repository.DataSource, token string) error {
		b, err := src.UpdateBlog(ctx, token, id, in)
		updated = b

		return err
	})
	if err != nil {
		srv.notifier.Error("Failed to save blog")

		return outcome, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	srv.admin.Apply(func(items []entity.Blog) []entity.Blog {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if updated != nil {
				items[i] = *updated
			} else {
				items[i] = in.ApplyTo(items[i])
				items[i].UpdatedAt = now
			}
		}

		return items
	})
	srv.notifier.Success(outcome.Label("Blog updated successfully"))

	return outcome, nil
}

func (srv *blogService) Delete(ctx context.Context, id string) (usecase.Outcome, error) {
	outcome, err := write(ctx, srv.gw, bearer("delete blog"), func(src repository.DataSource, token string) error {
		return src.DeleteBlog(ctx, token, id)
	})
	if err != nil {
		srv.notifier.Error("Failed to delete blog")

		return outcome, err
	}

	srv.admin.Apply(func(items []entity.Blog) []entity.Blog {
		return slices.DeleteFunc(items, func(b entity.Blog) bool { return b.ID == id })
	})
	srv.notifier.Success(outcome.Label("Blog deleted successfully"))

	return outcome, nil
}
