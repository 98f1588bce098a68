package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName   = errors.New("room name cannot be empty")
	ErrRoomNameTooLong = errors.New("room name is too long (max 191 characters)")
	ErrInvalidCapacity = errors.New("room capacity must be at least 1")
	ErrInvalidStatus   = errors.New("invalid room status")
	ErrInvalidRecState = errors.New("invalid room record state")
)

const MaxRoomNameLength = 191

type Room struct {
	id          uuid.UUID
	name        string
	capacity    int
	photo       string
	status      Status
	recordState RecordState
}

func NewRoom(id uuid.UUID, name string, capacity int, photo string, status Status, recordState RecordState) (*Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return nil, ErrRoomNameTooLong
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !recordState.IsValid() {
		return nil, ErrInvalidRecState
	}

	return &Room{
		id:          id,
		name:        name,
		capacity:    capacity,
		photo:       photo,
		status:      status,
		recordState: recordState,
	}, nil
}

// IsBookable gates new reservations: the room must be an active record and
// currently available. Existing reservations on rooms that later become
// unavailable are left untouched.
func (r *Room) IsBookable() bool {
	return r.recordState == RecordActive && r.status == StatusAvailable
}

func (r *Room) IsDeleted() bool {
	return r.recordState == RecordDeleted
}

func (r *Room) ID() uuid.UUID            { return r.id }
func (r *Room) Name() string             { return r.name }
func (r *Room) Capacity() int            { return r.capacity }
func (r *Room) Photo() string            { return r.photo }
func (r *Room) Status() Status           { return r.status }
func (r *Room) RecordState() RecordState { return r.recordState }
