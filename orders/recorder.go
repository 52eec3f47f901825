package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/nursery-store/models"
	"github.com/junaidrashid-git/nursery-store/notify"
	"github.com/junaidrashid-git/nursery-store/payment"
)

var (
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrAmountMismatch      = errors.New("line items do not add up to the amount paid")
	ErrSessionNotFound     = payment.ErrSessionNotFound

	errSkipStep = errors.New("skipped")
)

// stepClaimTimeout bounds how long a crashed confirmation blocks a step.
const stepClaimTimeout = 5 * time.Minute

// Notifier sends the order emails.
type Notifier interface {
	OrderConfirmation(ctx context.Context, order models.Order) (string, error)
	InternalNotice(ctx context.Context, order models.Order) (string, error)
	ShipmentNotice(ctx context.Context, order models.Order) (string, error)
}

// CartRemover drops the cart a checkout was paid from.
type CartRemover interface {
	Delete(ctx context.Context, sessionID string) error
}

// Broadcaster pushes new orders to connected admin screens.
type Broadcaster interface {
	Broadcast(order models.Order)
}

// Recorder turns a paid checkout session into an order. It is safe to call
// Confirm more than once for the same session: the success page and the
// payment webhook both do. Steps already recorded as succeeded are not run
// again.
type Recorder struct {
	repo     Repository
	gateway  payment.Gateway
	notifier Notifier
	carts    CartRemover
	feed     Broadcaster
	logger   *zap.Logger
	now      func() time.Time
}

func NewRecorder(repo Repository, gateway payment.Gateway, notifier Notifier, carts CartRemover, feed Broadcaster, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{
		repo:     repo,
		gateway:  gateway,
		notifier: notifier,
		carts:    carts,
		feed:     feed,
		logger:   logger,
		now:      time.Now,
	}
}

// Confirm records the order for a checkout session and runs its side effects.
// The returned error is non-nil only when no order could be produced; email
// and cart failures are logged and left in the step log.
func (r *Recorder) Confirm(ctx context.Context, checkoutSessionID string) (models.Order, error) {
	conf, err := r.gateway.Confirmation(ctx, checkoutSessionID)
	if err != nil {
		if errors.Is(err, payment.ErrSessionNotFound) {
			return models.Order{}, ErrSessionNotFound
		}
		return models.Order{}, fmt.Errorf("fetch checkout session: %w", err)
	}
	log := r.logger.With(zap.String("checkout_session", conf.SessionID))

	if conf.PaymentStatus != models.PaymentStatusPaid {
		log.Info("checkout session not paid", zap.String("payment_status", string(conf.PaymentStatus)))
		return models.Order{}, ErrPaymentNotCompleted
	}
	if lines := conf.LinesTotal(); lines != conf.AmountTotal {
		detail := fmt.Sprintf("lines %d, amount_total %d", lines, conf.AmountTotal)
		log.Error("❌ amount mismatch", zap.Int64("lines", lines), zap.Int64("amount_total", conf.AmountTotal))
		r.record(ctx, conf.SessionID, models.StepPersistOrder, models.StepFailed, detail)
		return models.Order{}, fmt.Errorf("%w: %s", ErrAmountMismatch, detail)
	}

	order, created, persistErr := r.persist(ctx, conf)
	if persistErr != nil {
		log.Error("❌ failed to persist order", zap.Error(persistErr))
	} else if created {
		log.Info("✅ order recorded", zap.String("order_ref", order.OrderRef), zap.Int64("total", order.TotalAmount))
		if r.feed != nil {
			r.feed.Broadcast(order)
		}
	}

	r.step(ctx, conf.SessionID, models.StepCustomerEmail, func(ctx context.Context) (string, error) {
		if strings.TrimSpace(order.CustomerEmail) == "" {
			return "", fmt.Errorf("%w: no customer email", errSkipStep)
		}
		id, err := r.notifier.OrderConfirmation(ctx, order)
		if errors.Is(err, notify.ErrInvalidRecipient) {
			return "", fmt.Errorf("%w: %v", errSkipStep, err)
		}
		return id, err
	})
	r.step(ctx, conf.SessionID, models.StepInternalEmail, func(ctx context.Context) (string, error) {
		id, err := r.notifier.InternalNotice(ctx, order)
		if errors.Is(err, notify.ErrNoAdminAddress) {
			return "", fmt.Errorf("%w: %v", errSkipStep, err)
		}
		return id, err
	})
	r.step(ctx, conf.SessionID, models.StepClearCart, func(ctx context.Context) (string, error) {
		if conf.ClientReference == "" {
			return "", fmt.Errorf("%w: no client reference", errSkipStep)
		}
		return conf.ClientReference, r.carts.Delete(ctx, conf.ClientReference)
	})

	if persistErr != nil {
		return order, fmt.Errorf("persist order: %w", persistErr)
	}
	return order, nil
}

// persist stores the order once. A concurrent or repeated confirmation finds
// the order the first one wrote.
func (r *Recorder) persist(ctx context.Context, conf payment.Confirmation) (models.Order, bool, error) {
	done, err := r.repo.StepSucceeded(ctx, conf.SessionID, models.StepPersistOrder)
	if err != nil {
		r.logger.Warn("could not read step log", zap.Error(err))
	}
	if done {
		order, err := r.repo.FindBySession(ctx, conf.SessionID)
		if err == nil {
			return order, false, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return r.newOrder(conf), false, err
		}
	}

	order := r.newOrder(conf)
	err = r.repo.Create(ctx, &order)
	switch {
	case errors.Is(err, ErrDuplicateSession):
		existing, findErr := r.repo.FindBySession(ctx, conf.SessionID)
		if findErr != nil {
			r.record(ctx, conf.SessionID, models.StepPersistOrder, models.StepFailed, findErr.Error())
			return order, false, findErr
		}
		r.record(ctx, conf.SessionID, models.StepPersistOrder, models.StepSucceeded, "already recorded as "+existing.OrderRef)
		return existing, false, nil
	case err != nil:
		r.record(ctx, conf.SessionID, models.StepPersistOrder, models.StepFailed, err.Error())
		return order, false, err
	}
	r.record(ctx, conf.SessionID, models.StepPersistOrder, models.StepSucceeded, order.OrderRef)
	return order, true, nil
}

func (r *Recorder) newOrder(conf payment.Confirmation) models.Order {
	now := r.now()
	order := models.Order{
		OrderRef:        now.Format("20060102150405") + "-" + uuid.NewString(),
		SessionID:       conf.SessionID,
		CustomerName:    conf.Customer.Name,
		CustomerEmail:   strings.TrimSpace(conf.Customer.Email),
		CustomerPhone:   conf.Customer.Phone,
		ShippingAddress: conf.Customer.Address,
		TotalAmount:     conf.AmountTotal,
		Currency:        strings.ToLower(conf.Currency),
		PaymentStatus:   conf.PaymentStatus,
		Status:          models.OrderStatusConfirmed,
		Items:           conf.LineItems,
		CreatedAt:       now,
	}
	for _, item := range conf.LineItems {
		if item.Name == "Shipping" {
			order.ShippingAmount += item.AmountTotal
		}
	}
	return order
}

// step runs fn at most once at a time per session. The claim is kept after a
// success and released otherwise, so a later confirmation can retry.
func (r *Recorder) step(ctx context.Context, sessionID string, name models.StepName, fn func(context.Context) (string, error)) {
	now := r.now()
	claimed, err := r.repo.ClaimStep(ctx, models.StepClaim{SessionID: sessionID, Step: name, ClaimedAt: now}, now.Add(-stepClaimTimeout))
	if err != nil {
		r.logger.Error("❌ could not claim order step", zap.String("checkout_session", sessionID), zap.String("step", string(name)), zap.Error(err))
		return
	}
	if !claimed {
		r.logger.Debug("order step claimed elsewhere", zap.String("checkout_session", sessionID), zap.String("step", string(name)))
		return
	}

	done, err := r.repo.StepSucceeded(ctx, sessionID, name)
	if err != nil {
		r.logger.Warn("could not read step log", zap.String("step", string(name)), zap.Error(err))
	}
	if done {
		return
	}

	detail, err := fn(ctx)
	switch {
	case errors.Is(err, errSkipStep):
		r.record(ctx, sessionID, name, models.StepSkipped, err.Error())
	case err != nil:
		r.logger.Error("❌ order step failed", zap.String("checkout_session", sessionID), zap.String("step", string(name)), zap.Error(err))
		r.record(ctx, sessionID, name, models.StepFailed, err.Error())
	default:
		r.record(ctx, sessionID, name, models.StepSucceeded, detail)
		return
	}
	if err := r.repo.ReleaseStep(context.WithoutCancel(ctx), sessionID, name); err != nil {
		r.logger.Warn("could not release order step", zap.String("step", string(name)), zap.Error(err))
	}
}

func (r *Recorder) record(ctx context.Context, sessionID string, name models.StepName, outcome models.StepOutcome, detail string) {
	err := r.repo.RecordStep(ctx, models.OrderStep{
		SessionID: sessionID,
		Step:      name,
		Outcome:   outcome,
		Detail:    detail,
		CreatedAt: r.now(),
	})
	if err != nil {
		r.logger.Error("❌ failed to record order step", zap.String("step", string(name)), zap.Error(err))
	}
}
