package portal

import (
	"go.uber.org/zap"

	"github.com/Paintersrp/sidoc/internal/notify"
)

// Notifier displays transient messages. Implementations must not block.
type Notifier interface {
	Notify(message string, severity notify.Severity)
}

// Coordinator owns the portal State and routes intents through Reduce.
type Coordinator struct {
	state    State
	notifier Notifier
	logger   *zap.Logger
}

func NewCoordinator(notifier Notifier, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		state:    Initial(),
		notifier: notifier,
		logger:   logger.Named("portal"),
	}
}

func (c *Coordinator) State() State {
	return c.state
}

// Dispatch runs in through Reduce, stores the result and performs its
// effects. A rejected intent leaves the state untouched.
func (c *Coordinator) Dispatch(in Intent) error {
	prev := c.state
	next, effects, err := Reduce(prev, in)
	if err != nil {
		c.logger.Warn("intent rejected",
			zap.Any("intent", in),
			zap.Stringer("page", prev.Page()),
			zap.Error(err),
		)
		return err
	}

	c.state = next
	c.logger.Debug("transition",
		zap.Any("intent", in),
		zap.Stringer("from", prev.Page()),
		zap.Stringer("to", next.Page()),
		zap.Stringer("selected", next.Selected()),
	)

	for _, effect := range effects {
		c.perform(effect)
	}
	return nil
}

func (c *Coordinator) perform(effect Effect) {
	switch e := effect.(type) {
	case Notify:
		if c.notifier == nil {
			c.logger.Debug("notification dropped", zap.String("message", e.Message))
			return
		}
		c.notifier.Notify(e.Message, e.Severity)
	}
}

// Navigate dispatches Navigate. It fails for an unknown page and for
// PageViewer without a focused document.
func (c *Coordinator) Navigate(p Page) error {
	return c.Dispatch(Navigate{Page: p})
}

func (c *Coordinator) Search(query string) {
	_ = c.Dispatch(Search{Query: query})
}

func (c *Coordinator) ViewDocument(id DocumentID) {
	_ = c.Dispatch(ViewDocument{ID: id})
}

func (c *Coordinator) EditDocument(id OptionalID) {
	_ = c.Dispatch(EditDocument{ID: id})
}

func (c *Coordinator) RequestDelete(id DocumentID) {
	_ = c.Dispatch(RequestDelete{ID: id})
}

func (c *Coordinator) RequestShare(id DocumentID) {
	_ = c.Dispatch(RequestShare{ID: id})
}

func (c *Coordinator) OpenUpload() {
	_ = c.Dispatch(OpenUpload{})
}

func (c *Coordinator) CloseModal(m Modal) {
	_ = c.Dispatch(CloseModal{Modal: m})
}

// ConfirmDelete returns ErrModalNotOpen when no delete was requested.
func (c *Coordinator) ConfirmDelete() error {
	return c.Dispatch(ConfirmDelete{})
}

func (c *Coordinator) ConfirmUpload() {
	_ = c.Dispatch(ConfirmUpload{})
}

func (c *Coordinator) ConfirmSave() {
	_ = c.Dispatch(ConfirmSave{})
}

func (c *Coordinator) Back() {
	_ = c.Dispatch(Back{})
}
