package repository

import "errors"

// ErrUnknownChatType is returned when a chat type has no QA table, e.g.
// game_recommendation, whose answers are never stored.
var ErrUnknownChatType = errors.New("repository: chat type has no qa table")
