package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"drinkpos/config"
	deliverycontext "drinkpos/internal/delivery/context"
	"drinkpos/internal/domain/entity"
	domainerrors "drinkpos/internal/domain/errors"
	"drinkpos/internal/domain/service"
	"drinkpos/internal/usecase"
	"drinkpos/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const transferMemoPrefix = "DH"

// orderSession is one staff member's cart and checkout context. mu serialises every operation on it.
type orderSession struct {
	mu sync.Mutex

	state       usecase.SessionState
	cart        *entity.Cart
	staged      []entity.CartItem
	stagedTotal int64
	buyer       *usecase.BuyerInfo
	orderDate   *time.Time
	method      entity.PaymentMethod
	reference   string
}

func newOrderSession() *orderSession {
	return &orderSession{
		state: usecase.SessionEmpty,
		cart:  entity.NewCart(),
	}
}

// reset forgets the staged context. The cart is left as is.
func (o *orderSession) reset() {
	o.state = usecase.SessionEmpty
	o.staged = nil
	o.stagedTotal = 0
	o.buyer = nil
	o.orderDate = nil
	o.method = ""
	o.reference = ""
}

func (o *orderSession) view() *usecase.SessionView {
	v := &usecase.SessionView{
		State:            o.state,
		Items:            o.cart.Items(),
		Total:            o.cart.Total(),
		StagedTotal:      o.stagedTotal,
		PaymentMethod:    o.method,
		AwaitingTransfer: o.state == usecase.SessionAwaitingMethod && o.method == entity.PaymentTransfer,
		Reference:        o.reference,
	}
	if o.buyer != nil {
		buyer := *o.buyer
		v.Buyer = &buyer
	}

	return v
}

// sessionRegistry holds the ordering sessions keyed by staff id.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*orderSession
}

func (r *sessionRegistry) get(staffID uuid.UUID) *orderSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[staffID]
	if !ok {
		session = newOrderSession()
		r.sessions[staffID] = session
	}

	return session
}

func (r *sessionRegistry) drop(staffID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, staffID)
}

type checkoutService struct {
	sessions *sessionRegistry
	catalog  usecase.CatalogUsecase
	orders   usecase.OrderUsecase
	qrCode   service.QRCodeService
	location *time.Location
	logger   *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Catalog usecase.CatalogUsecase
	Orders  usecase.OrderUsecase
	QRCode  service.QRCodeService
	Config  *config.Config
	Logger  *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	shop := shopConfig(params.Config)

	return &checkoutService{
		sessions: &sessionRegistry{sessions: make(map[uuid.UUID]*orderSession)},
		catalog:  params.Catalog,
		orders:   params.Orders,
		qrCode:   params.QRCode,
		location: shop.Location(),
		logger:   params.Logger,
	}
}

func (s *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// withSession runs fn while holding the session lock of staffID
func (s *checkoutService) withSession(staffID uuid.UUID, fn func(session *orderSession) error) (*usecase.SessionView, error) {
	session := s.sessions.get(staffID)

	session.mu.Lock()
	defer session.mu.Unlock()

	if err := fn(session); err != nil {
		return nil, err
	}

	return session.view(), nil
}

// GetSession returns the current session of staffID
func (s *checkoutService) GetSession(_ context.Context, staffID uuid.UUID) (*usecase.SessionView, error) {
	return s.withSession(staffID, func(*orderSession) error { return nil })
}

// AddItem adds one unit of itemID with the stock check across the whole cart
func (s *checkoutService) AddItem(ctx context.Context, staffID, itemID uuid.UUID) (*usecase.SessionView, error) {
	return s.withSession(staffID, func(session *orderSession) error {
		if session.state != usecase.SessionEmpty {
			return domainerrors.ErrSessionStaged
		}

		item, err := s.catalog.GetItem(ctx, itemID)
		if err != nil {
			return err
		}
		owner, err := s.catalog.GetStockOwner(ctx, itemID)
		if err != nil {
			return err
		}

		return cartError(session.cart.AddItem(item, owner))
	})
}

// ChangeQuantity adjusts a cart line by delta
func (s *checkoutService) ChangeQuantity(ctx context.Context, staffID, itemID uuid.UUID, delta int) (*usecase.SessionView, error) {
	return s.withSession(staffID, func(session *orderSession) error {
		if session.state != usecase.SessionEmpty {
			return domainerrors.ErrSessionStaged
		}

		idx := slices.IndexFunc(session.cart.Items(), func(line entity.CartItem) bool { return line.ItemID == itemID })
		if idx < 0 {
			return domainerrors.ErrItemNotInCart
		}
		line := session.cart.Items()[idx]

		var owner *entity.MenuItem
		if delta > 0 && !line.Category.IsUnlimited() {
			var err error
			if owner, err = s.catalog.GetStockOwner(ctx, itemID); err != nil {
				return err
			}
		}

		return cartError(session.cart.ChangeQuantity(itemID, delta, owner))
	})
}

// RemoveItem drops a cart line
func (s *checkoutService) RemoveItem(_ context.Context, staffID, itemID uuid.UUID) (*usecase.SessionView, error) {
	return s.withSession(staffID, func(session *orderSession) error {
		if session.state != usecase.SessionEmpty {
			return domainerrors.ErrSessionStaged
		}
		session.cart.RemoveItem(itemID)

		return nil
	})
}

// ClearCart empties the cart
func (s *checkoutService) ClearCart(_ context.Context, staffID uuid.UUID) (*usecase.SessionView, error) {
	return s.withSession(staffID, func(session *orderSession) error {
		if session.state != usecase.SessionEmpty {
			return domainerrors.ErrSessionStaged
		}
		session.cart.Clear()

		return nil
	})
}

// Stage snapshots the cart with the buyer info and waits for a payment method
func (s *checkoutService) Stage(ctx context.Context, staffID uuid.UUID, buyer usecase.BuyerInfo) (*usecase.SessionView, error) {
	return s.withSession(staffID, func(session *orderSession) error {
		if session.state != usecase.SessionEmpty {
			return domainerrors.ErrSessionStaged
		}
		if session.cart.IsEmpty() {
			return domainerrors.ErrEmptyCart
		}

		buyer.CustomerName = strings.TrimSpace(buyer.CustomerName)
		buyer.CustomerPhone = strings.TrimSpace(buyer.CustomerPhone)
		buyer.OrderDate = strings.TrimSpace(buyer.OrderDate)

		var orderDate *time.Time
		if buyer.OrderDate != "" {
			date, err := util.ParseDate(buyer.OrderDate, s.location)
			if err != nil {
				return domainerrors.ErrValidationFailed.WithDetails("order_date must be YYYY-MM-DD")
			}
			orderDate = &date
		}

		session.state = usecase.SessionStaged
		session.staged = session.cart.Items()
		session.stagedTotal = session.cart.Total()
		session.buyer = &buyer
		session.orderDate = orderDate
		session.reference = transferMemoPrefix + util.ShortID(uuid.New())
		session.state = usecase.SessionAwaitingMethod

		s.log(ctx).Debug("Order staged",
			slog.String("staffID", staffID.String()),
			slog.Int64("total", session.stagedTotal),
			slog.String("reference", session.reference),
		)

		return nil
	})
}

// SelectPaymentMethod chooses cash, transfer or postpaid for the staged order
func (s *checkoutService) SelectPaymentMethod(_ context.Context, staffID uuid.UUID, method entity.PaymentMethod) (*usecase.SessionView, error) {
	return s.withSession(staffID, func(session *orderSession) error {
		if session.state != usecase.SessionAwaitingMethod {
			return domainerrors.ErrSessionNotStaged
		}
		if !method.IsValid() {
			return domainerrors.ErrInvalidPaymentMethod
		}
		session.method = method

		return nil
	})
}

// Cancel returns to the cart. Nothing has been persisted at this point.
func (s *checkoutService) Cancel(_ context.Context, staffID uuid.UUID) (*usecase.SessionView, error) {
	return s.withSession(staffID, func(session *orderSession) error {
		session.reset()

		return nil
	})
}

// Confirm persists the staged order. On failure the session stays staged so the staff member can retry.
func (s *checkoutService) Confirm(ctx context.Context, staffID uuid.UUID, staffName string) (*entity.Order, error) {
	session := s.sessions.get(staffID)

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.state != usecase.SessionAwaitingMethod {
		return nil, domainerrors.ErrSessionNotStaged
	}
	if session.method == "" {
		return nil, domainerrors.ErrPaymentMethodRequired
	}

	session.state = usecase.SessionConfirmed
	order, err := s.orders.ConfirmOrder(ctx, &usecase.ConfirmOrderInput{
		StaffID:       staffID,
		StaffName:     staffName,
		Items:         session.staged,
		PaymentMethod: session.method,
		CustomerName:  session.buyer.CustomerName,
		CustomerPhone: session.buyer.CustomerPhone,
		OrderDate:     session.orderDate,
	})
	if err != nil {
		session.state = usecase.SessionAwaitingMethod
		s.log(ctx).Warn("Order confirmation failed, session kept", slog.String("staffID", staffID.String()), slog.Any("error", err))

		return nil, err
	}

	session.state = usecase.SessionPersisted
	session.cart.Clear()
	session.reset()

	return order, nil
}

// TransferQR renders the bank transfer QR code for the staged total
func (s *checkoutService) TransferQR(_ context.Context, staffID uuid.UUID) ([]byte, error) {
	session := s.sessions.get(staffID)

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.state != usecase.SessionAwaitingMethod {
		return nil, domainerrors.ErrSessionNotStaged
	}

	png, err := s.qrCode.GenerateTransferQR(service.TransferQRRequest{
		Amount: session.stagedTotal,
		Memo:   session.reference,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate transfer QR")
	}

	return png, nil
}

// DropSession forgets the session of staffID
func (s *checkoutService) DropSession(staffID uuid.UUID) {
	s.sessions.drop(staffID)
}

func cartError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entity.ErrOutOfStock):
		return domainerrors.ErrOutOfStock
	case errors.Is(err, entity.ErrItemNotInCart):
		return domainerrors.ErrItemNotInCart
	default:
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
}
