package contact

import (
    "bytes"
    "context"
    "errors"
    "testing"
    "time"

    "github.com/rs/zerolog"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/mock"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/sanadimo/internal/model"
    "github.com/iliyamo/sanadimo/internal/validation"
)

type mockSubmitter struct {
    mock.Mock
}

func (m *mockSubmitter) Submit(ctx context.Context, f validation.Form) error {
    return m.Called(ctx, f).Error(0)
}

type mockSaver struct {
    mock.Mock
}

func (m *mockSaver) Create(ctx context.Context, msg *model.ContactMessage) error {
    return m.Called(ctx, msg).Error(0)
}

var today = time.Date(2026, 10, 19, 12, 0, 0, 0, time.Local)

func validator() validation.Validator {
    return validation.Validator{Now: func() time.Time { return today }}
}

func validInquiry() validation.Inquiry {
    return validation.Inquiry{Contact: validation.Contact{
        Name:    "ნინო ბერიძე",
        Phone:   "0555 12 34 56",
        Email:   "nino@example.ge",
        Message: "გაქვთ თუ არა ვეგეტარიანული კერძები?",
    }}
}

func TestSubmitInvalidNeverCallsSubmitter(t *testing.T) {
    sub := new(mockSubmitter)
    svc := NewService(sub, validator(), time.Second)

    errs, err := svc.Submit(context.Background(), validation.Unspecified{})
    require.NoError(t, err)
    assert.Equal(t, validation.MsgRequired, errs[validation.FieldMessageType])
    assert.Equal(t, validation.MsgRequired, errs[validation.FieldName])
    sub.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestSubmitValidCallsSubmitterOnce(t *testing.T) {
    sub := new(mockSubmitter)
    sub.On("Submit", mock.Anything, mock.AnythingOfType("validation.Inquiry")).Return(nil).Once()
    svc := NewService(sub, validator(), time.Second)

    errs, err := svc.Submit(context.Background(), validInquiry())
    require.NoError(t, err)
    assert.False(t, errs.HasErrors())
    sub.AssertExpectations(t)
}

func TestSubmitPropagatesSubmitterError(t *testing.T) {
    boom := errors.New("broker down")
    sub := new(mockSubmitter)
    sub.On("Submit", mock.Anything, mock.Anything).Return(boom).Once()
    svc := NewService(sub, validator(), 0)

    errs, err := svc.Submit(context.Background(), validInquiry())
    assert.ErrorIs(t, err, boom)
    assert.Empty(t, errs)
    sub.AssertNumberOfCalls(t, "Submit", 1)
}

func TestSubmitSanitizesBeforeSubmitting(t *testing.T) {
    var got validation.Form
    svc := NewService(SubmitterFunc(func(_ context.Context, f validation.Form) error {
        got = f
        return nil
    }), validator(), 0)

    in := validInquiry()
    in.Message = "<b>გაქვთ თუ არა</b> ვეგეტარიანული კერძები?"
    _, err := svc.Submit(context.Background(), in)
    require.NoError(t, err)
    assert.Equal(t, "გაქვთ თუ არა ვეგეტარიანული კერძები?", got.ContactInfo().Message)
}

func TestSubmitAppliesTimeout(t *testing.T) {
    svc := NewService(SubmitterFunc(func(ctx context.Context, _ validation.Form) error {
        _, ok := ctx.Deadline()
        assert.True(t, ok)
        return nil
    }), validator(), time.Second)
    _, err := svc.Submit(context.Background(), validInquiry())
    require.NoError(t, err)
}

func TestValidateField(t *testing.T) {
    svc := NewService(LogSubmitter{Log: zerolog.Nop()}, validator(), 0)
    msg, bad := svc.ValidateField(validation.FieldEmail, "not-an-email")
    assert.True(t, bad)
    assert.Equal(t, validation.MsgInvalidEmail, msg)

    _, bad = svc.ValidateField(validation.FieldEmail, "a@b.ge")
    assert.False(t, bad)
}

func TestLogSubmitter(t *testing.T) {
    var buf bytes.Buffer
    err := LogSubmitter{Log: zerolog.New(&buf)}.Submit(context.Background(), validInquiry())
    require.NoError(t, err)
    assert.Contains(t, buf.String(), `"type":"inquiry"`)
    assert.Contains(t, buf.String(), "contact form received")
}

func TestStoreSubmitter(t *testing.T) {
    saver := new(mockSaver)
    saver.On("Create", mock.Anything, mock.MatchedBy(func(m *model.ContactMessage) bool {
        return m.MessageType == "reservation" && m.Guests != nil && *m.Guests == 2 &&
            m.Date != nil && *m.Date == "2026-10-20" && m.CreatedAt.Equal(today)
    })).Return(nil).Once()

    guests := 2
    s := StoreSubmitter{Saver: saver, Now: func() time.Time { return today }}
    err := s.Submit(context.Background(), validation.Reservation{
        Contact: validInquiry().Contact,
        Date:    "2026-10-20",
        Guests:  &guests,
    })
    require.NoError(t, err)
    saver.AssertExpectations(t)
}
