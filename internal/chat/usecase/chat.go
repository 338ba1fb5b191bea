package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aether/internal/chat"
	repo "aether/internal/chat/repository"
	"aether/internal/model"
	"aether/pkg/docstore"
)

// mirrorTimeout bounds the background Slack call so a slow Slack API
// never holds a goroutine forever.
const mirrorTimeout = 10 * time.Second

func (uc *implUseCase) CreateChannel(ctx context.Context, sc model.Scope, input chat.CreateChannelInput) (chat.ChannelOutput, error) {
	created, err := uc.repo.CreateChannel(ctx, repo.CreateChannelOptions{
		WorkspaceID:    sc.WorkspaceID,
		Name:           input.Name,
		Topic:          input.Topic,
		SlackChannelID: input.SlackChannelID,
		Demo:           input.Demo,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateChannel: %v", err)
		return chat.ChannelOutput{}, err
	}
	return chat.ChannelOutput{Channel: created}, nil
}

func (uc *implUseCase) ListChannels(ctx context.Context, sc model.Scope, input chat.ListChannelsInput) (chat.ListChannelsOutput, error) {
	channels, err := uc.repo.ListChannels(ctx, repo.ListChannelsOptions{
		WorkspaceID: sc.WorkspaceID,
		DemoOnly:    input.DemoOnly,
		Limit:       input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListChannels: %v", err)
		return chat.ListChannelsOutput{}, err
	}
	return chat.ListChannelsOutput{Channels: channels, Total: len(channels)}, nil
}

// SendMessage stores the message, then mirrors it to the linked Slack
// channel in the background. The caller gets its response as soon as
// the message is persisted; mirror failures are logged, not surfaced.
func (uc *implUseCase) SendMessage(ctx context.Context, sc model.Scope, input chat.SendMessageInput) (chat.MessageOutput, error) {
	channel, err := uc.repo.GetChannel(ctx, input.ChannelID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return chat.MessageOutput{}, chat.ErrChannelNotFound
		}
		uc.l.Errorf(ctx, "uc.SendMessage GetChannel: %v", err)
		return chat.MessageOutput{}, err
	}

	msg, err := uc.repo.CreateMessage(ctx, repo.CreateMessageOptions{
		ChannelID:  channel.ID,
		AuthorID:   sc.UserID,
		AuthorName: sc.Username,
		Text:       input.Text,
		Source:     chat.SourceAether,
		Demo:       input.Demo,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage CreateMessage: %v", err)
		return chat.MessageOutput{}, err
	}

	if uc.slack != nil && channel.SlackChannelID != "" {
		go uc.mirrorToSlack(channel.SlackChannelID, sc.Username, msg.Text)
	}

	return chat.MessageOutput{Message: msg}, nil
}

// mirrorToSlack runs detached from the request context.
func (uc *implUseCase) mirrorToSlack(slackChannelID, author, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
	defer cancel()

	body := text
	if author != "" {
		body = fmt.Sprintf("*%s*: %s", author, text)
	}

	if _, err := uc.slack.PostMessage(ctx, slackChannelID, body); err != nil {
		uc.l.Errorf(ctx, "uc.mirrorToSlack channel %s: %v", slackChannelID, err)
	}
}

func (uc *implUseCase) ListMessages(ctx context.Context, sc model.Scope, input chat.ListMessagesInput) (chat.ListMessagesOutput, error) {
	if _, err := uc.repo.GetChannel(ctx, input.ChannelID); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return chat.ListMessagesOutput{}, chat.ErrChannelNotFound
		}
		uc.l.Errorf(ctx, "uc.ListMessages GetChannel: %v", err)
		return chat.ListMessagesOutput{}, err
	}

	messages, err := uc.repo.ListMessages(ctx, repo.ListMessagesOptions{
		ChannelID: input.ChannelID,
		Limit:     input.Limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMessages: %v", err)
		return chat.ListMessagesOutput{}, err
	}
	return chat.ListMessagesOutput{Messages: messages, Total: len(messages)}, nil
}

// RecordSlackMessage ingests a Slack-originated message into the
// channel linked to its Slack channel. Slack messages are stored with
// the slack source marker and never mirrored back.
func (uc *implUseCase) RecordSlackMessage(ctx context.Context, input chat.RecordSlackMessageInput) (chat.MessageOutput, error) {
	channel, err := uc.repo.GetChannelBySlackID(ctx, input.SlackChannelID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return chat.MessageOutput{}, chat.ErrChannelNotLinked
		}
		uc.l.Errorf(ctx, "uc.RecordSlackMessage GetChannelBySlackID: %v", err)
		return chat.MessageOutput{}, err
	}

	msg, err := uc.repo.CreateMessage(ctx, repo.CreateMessageOptions{
		ChannelID:  channel.ID,
		AuthorID:   input.SlackUserID,
		AuthorName: input.SlackUserID,
		Text:       input.Text,
		Source:     chat.SourceSlack,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RecordSlackMessage CreateMessage: %v", err)
		return chat.MessageOutput{}, err
	}
	return chat.MessageOutput{Message: msg}, nil
}
