package usecase

import (
	"context"
	"errors"

	"aether/internal/content"
	repo "aether/internal/content/repository"
	"aether/internal/model"
	"aether/pkg/dateguard"
	"aether/pkg/docstore"
)

// SchedulePost validates the publish time with minute precision and
// flips the post to scheduled.
func (uc *implUseCase) SchedulePost(ctx context.Context, sc model.Scope, input content.SchedulePostInput) (content.PostOutput, error) {
	post, err := uc.repo.GetPost(ctx, input.PostID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return content.PostOutput{}, content.ErrPostNotFound
		}
		uc.l.Errorf(ctx, "uc.SchedulePost GetPost: %v", err)
		return content.PostOutput{}, err
	}

	res := uc.validator.Validate(input.PublishAt, dateguard.Options{
		Context:  dateguard.ContextMeeting,
		ShowTime: true,
		Required: true,
	})
	if !res.IsValid {
		return content.PostOutput{}, dateguard.NewValidationError(res)
	}

	post.PublishAt = input.PublishAt
	post.Status = model.PostStatusScheduled

	updated, err := uc.repo.UpdatePost(ctx, post)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SchedulePost UpdatePost: %v", err)
		return content.PostOutput{}, err
	}

	out := content.PostOutput{Post: updated}
	if len(res.Warnings) > 0 {
		out.Validation = &res
	}
	return out, nil
}

func (uc *implUseCase) ListPosts(ctx context.Context, sc model.Scope, input content.ListPostsInput) (content.ListPostsOutput, error) {
	posts, err := uc.repo.ListPosts(ctx, repo.ListPostsOptions{
		WorkspaceID: sc.WorkspaceID,
		Status:      input.Status,
		DemoOnly:    input.DemoOnly,
		Limit:       input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListPosts: %v", err)
		return content.ListPostsOutput{}, err
	}
	return content.ListPostsOutput{Posts: posts, Total: len(posts)}, nil
}
