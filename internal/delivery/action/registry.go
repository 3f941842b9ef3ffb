package action

import (
	"context"
	"errors"
	"sort"

	"medical-appointment-assistant/internal/delivery/dto"

	"github.com/sirupsen/logrus"
)

var ErrUnknownAction = errors.New("action not found")

// Action is a custom action the dialogue engine can invoke by name.
// Returned errors are infrastructure failures; expected outcomes are uttered.
type Action interface {
	Name() string
	Run(ctx context.Context, turn *Turn) error
}

type Registry struct {
	log     *logrus.Logger
	actions map[string]Action
}

func NewRegistry(log *logrus.Logger, actions ...Action) *Registry {
	r := &Registry{log: log, actions: make(map[string]Action)}
	r.Register(actions...)
	return r
}

func (r *Registry) Register(actions ...Action) {
	for _, a := range actions {
		r.actions[a.Name()] = a
	}
}

// Names lists the registered actions in alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run dispatches req to its action. Infrastructure failures are logged and
// answered with an apology so the conversation can go on.
func (r *Registry) Run(ctx context.Context, req *dto.ActionRequest) (*dto.ActionResponse, error) {
	a, ok := r.actions[req.NextAction]
	if !ok {
		return nil, ErrUnknownAction
	}

	turn := NewTurn(req)
	if err := a.Run(ctx, turn); err != nil {
		r.log.Warnf("Failed to run action %s for sender %s: %+v", req.NextAction, req.SenderID, err)
		turn.Utter(msgSomethingWentWrong)
	}
	return turn.Response(), nil
}
