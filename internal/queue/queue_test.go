package queue

import (
    "context"
    "encoding/json"
    "errors"
    "testing"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "github.com/rs/zerolog"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/mock"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/sanadimo/internal/model"
    "github.com/iliyamo/sanadimo/internal/validation"
)

type mockSaver struct {
    mock.Mock
}

func (m *mockSaver) Create(ctx context.Context, msg *model.ContactMessage) error {
    args := m.Called(ctx, msg)
    msg.ID = 42
    return args.Error(0)
}

var contact = validation.Contact{
    Name:    " ნინო ბერიძე ",
    Phone:   "+995 555 12 34 56",
    Email:   "nino@example.ge",
    Message: "მინდა მაგიდის დაჯავშნა ოთხი ადამიანისთვის",
}

func TestNewContactSubmittedReservation(t *testing.T) {
    guests := 4
    at := time.Date(2026, 10, 19, 9, 30, 0, 0, time.FixedZone("GET", 4*3600))
    ev := NewContactSubmitted(validation.Reservation{
        Contact: contact,
        Date:    "2026-11-01T19:00:00+04:00",
        Time:    "19:00",
        Guests:  &guests,
    }, at)

    assert.Len(t, ev.SubmissionID, 36)
    assert.Equal(t, "reservation", ev.MessageType)
    assert.Equal(t, "ნინო ბერიძე", ev.Name)
    assert.Equal(t, "2026-11-01", ev.Date)
    assert.Equal(t, "2026-10-19T05:30:00Z", ev.SubmittedAt)

    m := ev.ToMessage(time.Now())
    require.NotNil(t, m.Date)
    assert.Equal(t, "2026-11-01", *m.Date)
    assert.Equal(t, 4, *m.Guests)
    assert.Equal(t, at.UTC(), m.CreatedAt)
}

func TestReservationDayMatchesValidatedDay(t *testing.T) {
    now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
    date := "2026-10-18T23:00:00-05:00"
    require.True(t, validation.ValidateDate(date, now))

    ev := NewContactSubmitted(validation.Reservation{Contact: contact, Date: date}, now)
    assert.Equal(t, "2026-10-19", ev.Date)
}

func TestNewContactSubmittedInquiryHasNoReservationFields(t *testing.T) {
    ev := NewContactSubmitted(validation.Inquiry{Contact: contact}, time.Now())
    assert.Equal(t, "inquiry", ev.MessageType)
    assert.Empty(t, ev.Date)
    assert.Nil(t, ev.Guests)

    m := ev.ToMessage(time.Now())
    assert.Nil(t, m.Date)
    assert.Nil(t, m.Time)
}

func TestConsumerHandleStoresEvent(t *testing.T) {
    saver := new(mockSaver)
    saver.On("Create", mock.Anything, mock.MatchedBy(func(m *model.ContactMessage) bool {
        return m.SubmissionID == "abc" && m.MessageType == "feedback"
    })).Return(nil).Once()

    c := &Consumer{Saver: saver, Log: zerolog.Nop()}
    body, err := json.Marshal(ContactSubmittedEvent{
        SubmissionID: "abc",
        MessageType:  "feedback",
        Name:         "Giorgi",
        SubmittedAt:  "2026-10-19T10:00:00Z",
    })
    require.NoError(t, err)

    require.NoError(t, c.handle(context.Background(), body))
    saver.AssertExpectations(t)
}

func TestConsumerHandleRejects(t *testing.T) {
    saver := new(mockSaver)
    c := &Consumer{Saver: saver, Log: zerolog.Nop()}

    assert.Error(t, c.handle(context.Background(), []byte("{not json")))
    assert.Error(t, c.handle(context.Background(), []byte(`{"message_type":"inquiry"}`)))
    saver.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

    saver.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
    err := c.handle(context.Background(), []byte(`{"submission_id":"x"}`))
    assert.ErrorContains(t, err, "db down")
    assert.NotErrorIs(t, err, errMalformed)
    assert.ErrorIs(t, c.handle(context.Background(), []byte("{not json")), errMalformed)
}

type ackRecorder struct {
    acked    int
    nacked   int
    requeued bool
}

func (a *ackRecorder) Ack(uint64, bool) error { a.acked++; return nil }

func (a *ackRecorder) Nack(_ uint64, _ bool, requeue bool) error {
    a.nacked++
    a.requeued = requeue
    return nil
}

func (a *ackRecorder) Reject(_ uint64, requeue bool) error { return a.Nack(0, false, requeue) }

func TestConsumerSettlesDeliveries(t *testing.T) {
    saver := new(mockSaver)
    saver.On("Create", mock.Anything, mock.MatchedBy(func(m *model.ContactMessage) bool {
        return m.SubmissionID == "ok"
    })).Return(nil)
    saver.On("Create", mock.Anything, mock.MatchedBy(func(m *model.ContactMessage) bool {
        return m.SubmissionID == "down"
    })).Return(errors.New("db down"))
    c := &Consumer{Saver: saver, Log: zerolog.Nop(), RequeueDelay: time.Millisecond}

    stored := &ackRecorder{}
    c.process(context.Background(), amqp.Delivery{Acknowledger: stored, Body: []byte(`{"submission_id":"ok"}`)})
    assert.Equal(t, 1, stored.acked)
    assert.Zero(t, stored.nacked)

    garbage := &ackRecorder{}
    c.process(context.Background(), amqp.Delivery{Acknowledger: garbage, Body: []byte("{not json")})
    assert.Equal(t, 1, garbage.nacked)
    assert.False(t, garbage.requeued)

    outage := &ackRecorder{}
    c.process(context.Background(), amqp.Delivery{Acknowledger: outage, Body: []byte(`{"submission_id":"down"}`)})
    assert.Zero(t, outage.acked)
    assert.Equal(t, 1, outage.nacked)
    assert.True(t, outage.requeued)
}

func TestSleepStopsOnCancel(t *testing.T) {
    ctx, cancel := context.WithCancel(context.Background())
    cancel()
    assert.False(t, sleep(ctx, time.Hour))
    assert.True(t, sleep(context.Background(), time.Millisecond))
}
