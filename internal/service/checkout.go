package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	apperrors "github.com/bellavista/ordering/pkg/errors"
	"github.com/bellavista/ordering/pkg/logger"
	"github.com/bellavista/ordering/pkg/validator"

	"github.com/bellavista/ordering/internal/domain"
)

// CartAccessor is the slice of the cart service checkout needs.
type CartAccessor interface {
	GetCart(ctx context.Context, sessionID string) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

// OrderEventPublisher publishes completed orders.
type OrderEventPublisher interface {
	PublishOrderCompleted(ctx context.Context, order *domain.Order) error
}

// CheckoutStatus is the observable state of a session's checkout.
type CheckoutStatus struct {
	State       domain.CheckoutState `json:"state"`
	FieldErrors map[string]string    `json:"field_errors,omitempty"`
	Order       *domain.Order        `json:"order,omitempty"`
}

// submission tracks one session's in-progress or settled checkout.
type submission struct {
	state       domain.CheckoutState
	fieldErrors map[string]string
	order       *domain.Order
	cancel      context.CancelFunc
}

// CheckoutService runs the simulated checkout flow. Payment is not real:
// a submission validates the form, snapshots the cart, waits a fixed delay,
// then completes by clearing the cart and publishing the order.
type CheckoutService struct {
	cart   CartAccessor
	events OrderEventPublisher
	delay  time.Duration
	logger *slog.Logger

	orderSeq atomic.Int64

	mu          sync.Mutex
	submissions map[string]*submission

	baseCtx    context.Context
	baseCancel context.CancelFunc
	wg         sync.WaitGroup
}

// NewCheckoutService creates a checkout service. delay is how long a
// submission stays in the submitting state before settling.
func NewCheckoutService(cart CartAccessor, events OrderEventPublisher, delay time.Duration, log *slog.Logger) *CheckoutService {
	baseCtx, baseCancel := context.WithCancel(context.Background())
	s := &CheckoutService{
		cart:        cart,
		events:      events,
		delay:       delay,
		logger:      log,
		submissions: make(map[string]*submission),
		baseCtx:     baseCtx,
		baseCancel:  baseCancel,
	}
	s.orderSeq.Store(domain.OrderNumberSeed)
	return s
}

// Submit starts a checkout for the session. A submission already in flight
// is rejected with a conflict; the order counter advances only when the form
// validates and the cart is non-empty.
func (s *CheckoutService) Submit(ctx context.Context, sessionID string, info domain.CustomerInfo) (*CheckoutStatus, error) {
	// Reserve the session's submission slot in the same lock acquisition as
	// the in-flight check, so two concurrent submits cannot both pass the
	// guard and snapshot the cart twice.
	hold := &submission{state: domain.CheckoutStateSubmitting}
	s.mu.Lock()
	prev, hadPrev := s.submissions[sessionID]
	if hadPrev && prev.state == domain.CheckoutStateSubmitting {
		s.mu.Unlock()
		return nil, apperrors.Conflict("checkout already in progress for this session")
	}
	s.submissions[sessionID] = hold
	s.mu.Unlock()

	if fieldErrors := validateCustomerInfo(info); len(fieldErrors) > 0 {
		// An invalid resubmit must not discard a settled confirmation; the
		// order record stays visible until the session dismisses it.
		next := &submission{
			state:       domain.CheckoutStateValidationFailed,
			fieldErrors: fieldErrors,
		}
		if hadPrev && prev.state == domain.CheckoutStateCompleted {
			next = prev
		}
		s.replace(sessionID, hold, next)
		return &CheckoutStatus{
			State:       domain.CheckoutStateValidationFailed,
			FieldErrors: fieldErrors,
		}, nil
	}

	cart, err := s.cart.GetCart(ctx, sessionID)
	if err != nil {
		s.rollback(sessionID, hold, prev, hadPrev)
		return nil, err
	}
	if len(cart.Items) == 0 {
		s.rollback(sessionID, hold, prev, hadPrev)
		return nil, apperrors.InvalidInput("cart is empty")
	}

	totals := cart.ComputeTotals(info.OrderType)
	order := &domain.Order{
		Number:      domain.FormatOrderNumber(s.orderSeq.Add(1) - 1),
		SessionID:   sessionID,
		Customer:    info,
		Items:       append([]domain.LineItem(nil), cart.Items...),
		Subtotal:    totals.Subtotal,
		Tax:         totals.Tax,
		DeliveryFee: totals.DeliveryFee,
		Total:       totals.Total,
		CreatedAt:   time.Now().UTC(),
	}

	subCtx, cancel := context.WithCancel(s.baseCtx)
	sub := &submission{
		state:  domain.CheckoutStateSubmitting,
		order:  order,
		cancel: cancel,
	}
	s.replace(sessionID, hold, sub)

	s.wg.Add(1)
	go s.settle(subCtx, sessionID, order)

	return &CheckoutStatus{State: domain.CheckoutStateSubmitting}, nil
}

// replace swaps the reserved slot for its settled form. The slot is left
// alone if something else took it over in the meantime.
func (s *CheckoutService) replace(sessionID string, hold, next *submission) {
	s.mu.Lock()
	if s.submissions[sessionID] == hold {
		s.submissions[sessionID] = next
	}
	s.mu.Unlock()
}

// rollback restores whatever held the slot before a submit that failed
// without producing a new submission state.
func (s *CheckoutService) rollback(sessionID string, hold, prev *submission, hadPrev bool) {
	s.mu.Lock()
	if s.submissions[sessionID] == hold {
		if hadPrev {
			s.submissions[sessionID] = prev
		} else {
			delete(s.submissions, sessionID)
		}
	}
	s.mu.Unlock()
}

// settle waits out the simulated payment delay and completes the order.
func (s *CheckoutService) settle(ctx context.Context, sessionID string, order *domain.Order) {
	defer s.wg.Done()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	if err := s.cart.Clear(ctx, sessionID); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear cart after checkout",
			slog.String("session_id", sessionID),
			slog.String("order_number", order.Number),
			slog.String("error", err.Error()),
		)
	}

	if err := s.events.PublishOrderCompleted(ctx, order); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order completed event",
			slog.String("order_number", order.Number),
			slog.String("error", err.Error()),
		)
	}

	s.mu.Lock()
	if sub, ok := s.submissions[sessionID]; ok && sub.order == order {
		sub.state = domain.CheckoutStateCompleted
	}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "order completed",
		slog.String("session_id", sessionID),
		slog.String("order_number", order.Number),
		slog.Int64("total", order.Total),
	)
}

// Status returns the current checkout state for the session. Sessions with
// no submission are idle. The order snapshot is exposed once completed.
func (s *CheckoutService) Status(_ context.Context, sessionID string) *CheckoutStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.submissions[sessionID]
	if !ok {
		return &CheckoutStatus{State: domain.CheckoutStateIdle}
	}

	status := &CheckoutStatus{
		State:       sub.state,
		FieldErrors: sub.fieldErrors,
	}
	if sub.state == domain.CheckoutStateCompleted {
		status.Order = sub.order
	}
	return status
}

// Dismiss acknowledges a settled checkout, returning the session to idle.
// A submission still in flight cannot be dismissed.
func (s *CheckoutService) Dismiss(ctx context.Context, sessionID string) (*CheckoutStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.submissions[sessionID]
	if !ok {
		return &CheckoutStatus{State: domain.CheckoutStateIdle}, nil
	}
	if sub.state == domain.CheckoutStateSubmitting {
		return nil, apperrors.Conflict("checkout still in progress")
	}

	delete(s.submissions, sessionID)

	logger.FromContext(ctx).DebugContext(ctx, "checkout dismissed",
		slog.String("session_id", sessionID),
	)
	return &CheckoutStatus{State: domain.CheckoutStateIdle}, nil
}

// Close cancels in-flight submissions and waits for their goroutines.
func (s *CheckoutService) Close() {
	s.baseCancel()
	s.wg.Wait()
}

// validateCustomerInfo checks the checkout form field by field. The address
// is required only for delivery orders.
func validateCustomerInfo(info domain.CustomerInfo) map[string]string {
	fieldErrors := make(map[string]string)

	if strings.TrimSpace(info.Name) == "" {
		fieldErrors["name"] = "is required"
	}
	if strings.TrimSpace(info.Email) == "" {
		fieldErrors["email"] = "is required"
	} else if !validator.IsEmail(info.Email) {
		fieldErrors["email"] = "must be a valid email address"
	}
	if strings.TrimSpace(info.Phone) == "" {
		fieldErrors["phone"] = "is required"
	} else if !validator.IsPhone(info.Phone) {
		fieldErrors["phone"] = "must be a valid phone number"
	}
	if !info.OrderType.Valid() {
		fieldErrors["order_type"] = "must be one of: delivery pickup"
	}
	if strings.TrimSpace(info.PaymentMethod) == "" {
		fieldErrors["payment_method"] = "is required"
	}
	if info.OrderType == domain.OrderTypeDelivery && strings.TrimSpace(info.Address) == "" {
		fieldErrors["address"] = "is required for delivery orders"
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}
