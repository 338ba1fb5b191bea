package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"aether/internal/chat/repository"
	"aether/internal/model"
	pkgDocstore "aether/pkg/docstore"
	pkgLog "aether/pkg/log"
)

const (
	channelCollection = "channels"
	messageCollection = "messages"
)

type implRepository struct {
	store *pkgDocstore.Client
	l     pkgLog.Logger
}

// New creates a document-store backed chat repository.
func New(store *pkgDocstore.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		store: store,
		l:     l,
	}
}

func (r *implRepository) CreateChannel(ctx context.Context, opt repository.CreateChannelOptions) (model.Channel, error) {
	channel := model.Channel{
		WorkspaceID:    opt.WorkspaceID,
		Name:           opt.Name,
		Topic:          opt.Topic,
		SlackChannelID: opt.SlackChannelID,
		Demo:           opt.Demo,
	}

	doc, err := r.store.Create(ctx, channelCollection, channel)
	if err != nil {
		r.l.Errorf(ctx, "chat repository: failed to create channel: %v", err)
		return model.Channel{}, err
	}
	return r.docToChannel(doc)
}

func (r *implRepository) GetChannel(ctx context.Context, id string) (model.Channel, error) {
	doc, err := r.store.Get(ctx, channelCollection, id)
	if err != nil {
		return model.Channel{}, err
	}
	return r.docToChannel(doc)
}

// GetChannelBySlackID finds the channel linked to a Slack channel.
// Returns docstore.ErrNotFound when nothing is linked.
func (r *implRepository) GetChannelBySlackID(ctx context.Context, slackChannelID string) (model.Channel, error) {
	docs, err := r.store.List(ctx, channelCollection, pkgDocstore.ListOptions{
		Filter: map[string]string{"slack_channel_id": slackChannelID},
		Limit:  1,
	})
	if err != nil {
		return model.Channel{}, err
	}
	if len(docs) == 0 {
		return model.Channel{}, pkgDocstore.ErrNotFound
	}
	return r.docToChannel(&docs[0])
}

func (r *implRepository) ListChannels(ctx context.Context, opt repository.ListChannelsOptions) ([]model.Channel, error) {
	filter := map[string]string{}
	if opt.WorkspaceID != "" {
		filter["workspace_id"] = opt.WorkspaceID
	}
	if opt.DemoOnly {
		filter["demo"] = "true"
	}

	limit := opt.Limit
	if limit == 0 {
		limit = 100
	}

	docs, err := r.store.List(ctx, channelCollection, pkgDocstore.ListOptions{Filter: filter, Limit: limit})
	if err != nil {
		return nil, err
	}

	channels := make([]model.Channel, 0, len(docs))
	for i := range docs {
		ch, err := r.docToChannel(&docs[i])
		if err != nil {
			r.l.Errorf(ctx, "chat repository: skipping malformed channel %s: %v", docs[i].ID, err)
			continue
		}
		channels = append(channels, ch)
	}
	return channels, nil
}

func (r *implRepository) DeleteChannel(ctx context.Context, id string) error {
	return r.store.Delete(ctx, channelCollection, id)
}

func (r *implRepository) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (model.Message, error) {
	msg := model.Message{
		ChannelID:  opt.ChannelID,
		AuthorID:   opt.AuthorID,
		AuthorName: opt.AuthorName,
		Text:       opt.Text,
		Source:     opt.Source,
		Demo:       opt.Demo,
	}

	doc, err := r.store.Create(ctx, messageCollection, msg)
	if err != nil {
		r.l.Errorf(ctx, "chat repository: failed to create message: %v", err)
		return model.Message{}, err
	}
	return r.docToMessage(doc)
}

func (r *implRepository) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
	filter := map[string]string{}
	if opt.ChannelID != "" {
		filter["channel_id"] = opt.ChannelID
	}
	if opt.DemoOnly {
		filter["demo"] = "true"
	}

	limit := opt.Limit
	if limit == 0 {
		limit = 100
	}

	docs, err := r.store.List(ctx, messageCollection, pkgDocstore.ListOptions{Filter: filter, Limit: limit})
	if err != nil {
		return nil, err
	}

	messages := make([]model.Message, 0, len(docs))
	for i := range docs {
		m, err := r.docToMessage(&docs[i])
		if err != nil {
			r.l.Errorf(ctx, "chat repository: skipping malformed message %s: %v", docs[i].ID, err)
			continue
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func (r *implRepository) DeleteMessage(ctx context.Context, id string) error {
	return r.store.Delete(ctx, messageCollection, id)
}

func (r *implRepository) docToChannel(doc *pkgDocstore.Document) (model.Channel, error) {
	var channel model.Channel
	if err := json.Unmarshal(doc.Data, &channel); err != nil {
		return model.Channel{}, fmt.Errorf("failed to decode channel document: %w", err)
	}
	channel.ID = doc.ID
	channel.CreateTime = doc.CreateTime
	return channel, nil
}

func (r *implRepository) docToMessage(doc *pkgDocstore.Document) (model.Message, error) {
	var msg model.Message
	if err := json.Unmarshal(doc.Data, &msg); err != nil {
		return model.Message{}, fmt.Errorf("failed to decode message document: %w", err)
	}
	msg.ID = doc.ID
	msg.CreateTime = doc.CreateTime
	return msg, nil
}
