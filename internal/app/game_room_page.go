package app

import (
	"context"
	"log"
	"sync"

	"quiz-author/internal/domain"
	"quiz-author/internal/form"
)

const (
	MsgChooseTopicAndLevel = "Please choose a topic and a difficulty."
	MsgRoomCreateFail      = "Failed to create game room."
)

// GameRoomPage is the create-game page. The created room is not retained;
// its configuration is handed to the waiting room through navigation.
type GameRoomPage struct {
	api   RoomAPI
	toast Notifier
	nav   Navigator

	mu         sync.Mutex
	form       form.GameRoomForm
	submitting bool
}

func NewGameRoomPage(api RoomAPI, toast Notifier, nav Navigator) *GameRoomPage {
	return &GameRoomPage{api: api, toast: toast, nav: nav, form: form.NewGameRoomForm()}
}

// Form returns the current snapshot.
func (p *GameRoomPage) Form() form.GameRoomForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

// Update applies a state transition to the current snapshot.
func (p *GameRoomPage) Update(fn func(form.GameRoomForm) form.GameRoomForm) form.GameRoomForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = fn(p.form)
	return p.form
}

// Submit creates the room and navigates to the waiting room.
func (p *GameRoomPage) Submit(ctx context.Context) (domain.WaitingRoomState, error) {
	p.mu.Lock()
	if p.submitting {
		p.mu.Unlock()
		return domain.WaitingRoomState{}, domain.ErrSubmitInProgress
	}
	validated, ok := p.form.Validate()
	p.form = validated
	if !ok {
		p.mu.Unlock()
		p.toast.Warning(MsgChooseTopicAndLevel)
		return domain.WaitingRoomState{}, domain.ErrValidation
	}
	p.submitting = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.submitting = false
		p.mu.Unlock()
	}()

	req, err := validated.Request()
	if err != nil {
		p.toast.Warning(MsgChooseTopicAndLevel)
		return domain.WaitingRoomState{}, err
	}
	resp, err := p.api.CreatePrivateRoom(ctx, req)
	if err != nil {
		log.Printf("create private room: %v", err)
		p.toast.Warning(MsgRoomCreateFail)
		return domain.WaitingRoomState{}, err
	}
	log.Printf("private room created: %s", string(resp))

	handoff := validated.Handoff()
	p.nav.Navigate(PathWaitingRoom, handoff)
	return handoff, nil
}
