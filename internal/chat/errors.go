package chat

import "errors"

var (
	ErrChannelNotFound  = errors.New("channel not found")
	ErrChannelNotLinked = errors.New("no channel is linked to this slack channel")
)
