package samples

import (
	"context"
	"medilabx-service/internal/app/contracts"
	"medilabx-service/internal/app/models"
	"medilabx-service/internal/app/services/core/lifecycle"
	"medilabx-service/internal/pkg/constvars"
	"medilabx-service/internal/pkg/dto/requests"
	"medilabx-service/internal/pkg/dto/responses"
	"medilabx-service/internal/pkg/exceptions"
	"medilabx-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var tabLabels = map[models.BookingStatus]string{
	models.BookingStatusBooked:          "Pending Collection",
	models.BookingStatusSampleCollected: "Collected",
	models.BookingStatusProcessing:      "Processing",
	models.BookingStatusReviewed:        "Reviewed",
	models.BookingStatusCompleted:       "Completed",
	models.BookingStatusCancelled:       "Cancelled",
}

// Board is the state of one sample management page: the selected tab, the
// rows last fetched for it, a page-wide loading flag and an error banner.
//
// Every action issues exactly one backend call and then refetches the current
// tab. Failures never escape; they end up in the banner. While a call is in
// flight the board refuses other actions.
type Board struct {
	bookings contracts.BookingApiClient
	events   contracts.EventPublisher
	log      *zap.Logger
	now      func() time.Time

	mu      sync.Mutex
	tab     models.BookingStatus
	rows    []models.TestBooking
	loading bool
	banner  string
}

// NewBoard opens a board on tab. events may be nil.
func NewBoard(bookings contracts.BookingApiClient, events contracts.EventPublisher, logger *zap.Logger, tab models.BookingStatus) *Board {
	return &Board{
		bookings: bookings,
		events:   events,
		log:      logger,
		now:      time.Now,
		tab:      tab,
		rows:     []models.TestBooking{},
	}
}

// ParseTab maps a tab query value to its status, defaulting to booked.
func ParseTab(tab string) (models.BookingStatus, error) {
	if tab == "" {
		return models.BookingStatusBooked, nil
	}
	status, err := models.ParseBookingStatus(tab)
	if err != nil {
		return "", exceptions.ErrUnknownStatus(err, tab)
	}
	return status, nil
}

func (b *Board) Load(ctx context.Context) {
	if !b.begin(constvars.BannerPrefixLoadSamples, "load") {
		return
	}
	defer b.end()

	err := b.refetch(ctx)
	if err != nil {
		b.setBanner(utils.BannerMessage(constvars.BannerPrefixLoadSamples, err))
	}
}

func (b *Board) SwitchTab(ctx context.Context, tab models.BookingStatus) {
	b.mu.Lock()
	if b.loading {
		b.banner = utils.BannerMessage(constvars.BannerPrefixLoadSamples, exceptions.ErrBoardBusy(nil, "switch_tab"))
		b.mu.Unlock()
		return
	}
	b.tab = tab
	b.rows = []models.TestBooking{}
	b.mu.Unlock()

	b.Load(ctx)
}

func (b *Board) Collect(ctx context.Context, bookingID int64) {
	b.Apply(ctx, bookingID, lifecycle.ActionCollect, "")
}

func (b *Board) StartProcessing(ctx context.Context, bookingID int64) {
	b.Apply(ctx, bookingID, lifecycle.ActionStartProcessing, "")
}

func (b *Board) MarkReviewed(ctx context.Context, bookingID int64) {
	b.Apply(ctx, bookingID, lifecycle.ActionMarkReviewed, "")
}

func (b *Board) MarkCompleted(ctx context.Context, bookingID int64) {
	b.Apply(ctx, bookingID, lifecycle.ActionMarkCompleted, "")
}

func (b *Board) Cancel(ctx context.Context, bookingID int64, notes string) {
	b.Apply(ctx, bookingID, lifecycle.ActionCancel, notes)
}

// Apply runs one lifecycle action against a booking. A booking that is not in
// the current rows is sent to the backend unchecked.
func (b *Board) Apply(ctx context.Context, bookingID int64, action lifecycle.Action, notes string) {
	prefix := action.BannerPrefix()
	if !b.begin(prefix, action.String()) {
		return
	}
	defer b.end()

	requestID := utils.GetRequestID(ctx)
	b.log.Info("Board.Apply called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
		zap.String(constvars.LoggingActionKey, action.String()),
	)

	from, inView := b.statusOf(bookingID)
	var to models.BookingStatus
	if inView {
		next, err := lifecycle.Next(from, action)
		if err != nil {
			b.log.Info("Board.Apply refused locally",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingStatusKey, from.String()),
				zap.Error(err),
			)
			b.setBanner(utils.BannerMessage(prefix, err))
			return
		}
		to = next
	}

	booking, err := b.call(ctx, bookingID, action, notes)
	if err != nil {
		b.log.Error("Board.Apply backend call failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
		b.setBanner(utils.BannerMessage(prefix, err))
		return
	}
	if booking != nil && booking.Status != "" {
		to = booking.Status
	}

	publishTransition(ctx, b.events, b.log, &models.BookingTransitionedEvent{
		BookingID:  bookingID,
		Action:     action.String(),
		From:       from,
		To:         to,
		OccurredAt: b.now().UTC(),
		RequestID:  requestID,
	})

	err = b.refetch(ctx)
	if err != nil {
		b.setBanner(utils.BannerMessage(constvars.BannerPrefixLoadSamples, err))
		return
	}

	b.log.Info("Board.Apply succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
		zap.String(constvars.LoggingStatusKey, to.String()),
	)
}

func (b *Board) call(ctx context.Context, bookingID int64, action lifecycle.Action, notes string) (*models.TestBooking, error) {
	switch action {
	case lifecycle.ActionCollect:
		return b.bookings.MarkSampleCollected(ctx, bookingID)
	case lifecycle.ActionStartProcessing:
		return b.bookings.MarkProcessing(ctx, bookingID)
	case lifecycle.ActionMarkReviewed:
		return b.bookings.MarkReviewed(ctx, bookingID)
	case lifecycle.ActionMarkCompleted:
		return b.bookings.MarkCompleted(ctx, bookingID)
	case lifecycle.ActionCancel:
		request := &requests.CancelBooking{Notes: notes}
		if err := utils.ValidateStruct(request); err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		return b.bookings.CancelBooking(ctx, bookingID, request)
	default:
		return nil, exceptions.ErrUnknownAction(nil, action.String())
	}
}

// refetch reloads the rows of the current tab. Rows keep their previous
// content when the call fails.
func (b *Board) refetch(ctx context.Context) error {
	b.mu.Lock()
	tab := b.tab
	b.mu.Unlock()

	rows, err := b.bookings.FindBookingsByStatus(ctx, tab)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.tab == tab {
		b.rows = rows
	}
	return nil
}

func (b *Board) begin(prefix, action string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.loading {
		b.banner = utils.BannerMessage(prefix, exceptions.ErrBoardBusy(nil, action))
		return false
	}
	b.loading = true
	b.banner = ""
	return true
}

func (b *Board) end() {
	b.mu.Lock()
	b.loading = false
	b.mu.Unlock()
}

func (b *Board) setBanner(banner string) {
	b.mu.Lock()
	b.banner = banner
	b.mu.Unlock()
}

func (b *Board) statusOf(bookingID int64) (models.BookingStatus, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, row := range b.rows {
		if row.ID == bookingID {
			return row.Status, true
		}
	}
	return "", false
}

func (b *Board) Banner() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.banner
}

func (b *Board) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

func (b *Board) Snapshot() *responses.BoardSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	snapshot := &responses.BoardSnapshot{
		Tab:     b.tab.String(),
		Tabs:    make([]responses.Tab, 0, len(models.BookingStatuses)),
		Rows:    make([]responses.SampleRow, 0, len(b.rows)),
		Loading: b.loading,
		Error:   b.banner,
	}
	for _, status := range models.BookingStatuses {
		snapshot.Tabs = append(snapshot.Tabs, responses.Tab{
			Status: status.String(),
			Label:  tabLabels[status],
			Active: status == b.tab,
		})
	}
	for _, booking := range b.rows {
		snapshot.Rows = append(snapshot.Rows, toSampleRow(booking))
	}
	return snapshot
}

func toSampleRow(booking models.TestBooking) responses.SampleRow {
	row := responses.SampleRow{
		BookingID:      booking.ID,
		Status:         booking.Status,
		Notes:          booking.Notes,
		DeliveryMethod: string(booking.DeliveryMethod),
		CreatedAt:      booking.CreatedAt,
		Actions:        []string{},
		CanEditReport:  lifecycle.CanEditReport(booking.Status),
	}
	if booking.Patient != nil {
		row.PatientName = booking.Patient.Name
	}
	if booking.Test != nil {
		row.TestName = booking.Test.Name
	}
	if booking.Doctor != nil {
		row.DoctorName = booking.Doctor.Name
	}
	for _, action := range lifecycle.AvailableActions(booking.Status) {
		row.Actions = append(row.Actions, action.Slug())
	}
	return row
}
