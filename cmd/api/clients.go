package main

import (
	"context"

	"aether/pkg/gcalendar"
	"aether/pkg/hubspot"
	"aether/pkg/slack"
)

// The *OrNil helpers keep unconfigured clients as true nil interfaces.
// Passing a nil *Client pointer directly would produce a non-nil
// interface and defeat the use cases' "is it configured" checks.

type messagePoster interface {
	PostMessage(ctx context.Context, channelID, text string) (string, error)
}

func slackOrNil(c *slack.Client) messagePoster {
	if c == nil {
		return nil
	}
	return c
}

type contactSyncer interface {
	CreateContact(ctx context.Context, props hubspot.ContactProperties) (*hubspot.Contact, error)
	UpdateContact(ctx context.Context, id string, props hubspot.ContactProperties) (*hubspot.Contact, error)
}

func hubspotOrNil(c *hubspot.Client) contactSyncer {
	if c == nil {
		return nil
	}
	return c
}

type eventCreator interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

func calendarOrNil(c *gcalendar.Client) eventCreator {
	if c == nil {
		return nil
	}
	return c
}
