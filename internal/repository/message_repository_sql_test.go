package repository

import (
    "context"
    "errors"
    "regexp"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/sanadimo/internal/model"
)

var messageCols = []string{"id", "submission_id", "message_type", "name", "phone", "email",
    "message", "res_date", "res_time", "guests", "created_at"}

func newMockRepo(t *testing.T) (*MessageRepo, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    t.Cleanup(func() {
        assert.NoError(t, mock.ExpectationsWereMet())
        _ = db.Close()
    })
    return NewMessageRepo(db), mock
}

func reservationMessage(at time.Time) *model.ContactMessage {
    date, tm, guests := "2026-11-01", "19:30", 4
    return &model.ContactMessage{
        SubmissionID: "sub-1",
        MessageType:  "reservation",
        Name:         "ნინო",
        Phone:        "0555123456",
        Email:        "n@example.ge",
        Message:      "მაგიდა ოთხისთვის",
        Date:         &date,
        Time:         &tm,
        Guests:       &guests,
        CreatedAt:    at,
    }
}

const insertMessage = "INSERT IGNORE INTO contact_messages"

func TestCreateSetsInsertedID(t *testing.T) {
    repo, mock := newMockRepo(t)
    at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
    m := reservationMessage(at)

    mock.ExpectExec(regexp.QuoteMeta(insertMessage)).
        WithArgs("sub-1", "reservation", "ნინო", "0555123456", "n@example.ge", "მაგიდა ოთხისთვის",
            "2026-11-01", "19:30", int64(4), at).
        WillReturnResult(sqlmock.NewResult(7, 1))

    require.NoError(t, repo.Create(context.Background(), m))
    assert.Equal(t, uint64(7), m.ID)
}

func TestCreateRedeliveryReusesExistingRow(t *testing.T) {
    repo, mock := newMockRepo(t)
    m := reservationMessage(time.Now().UTC())

    mock.ExpectExec(regexp.QuoteMeta(insertMessage)).WillReturnResult(sqlmock.NewResult(0, 0))
    mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM contact_messages WHERE submission_id = ?")).
        WithArgs("sub-1").
        WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

    require.NoError(t, repo.Create(context.Background(), m))
    assert.Equal(t, uint64(3), m.ID)
}

func TestCreatePropagatesExecError(t *testing.T) {
    repo, mock := newMockRepo(t)
    mock.ExpectExec(regexp.QuoteMeta(insertMessage)).WillReturnError(errors.New("deadlock"))
    assert.ErrorContains(t, repo.Create(context.Background(), reservationMessage(time.Now())), "deadlock")
}

func TestGetByIDNotFound(t *testing.T) {
    repo, mock := newMockRepo(t)
    mock.ExpectQuery(regexp.QuoteMeta("FROM contact_messages WHERE id = ?")).
        WithArgs(9).
        WillReturnRows(sqlmock.NewRows(messageCols))

    _, err := repo.GetByID(context.Background(), 9)
    assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFiltersAndPages(t *testing.T) {
    repo, mock := newMockRepo(t)
    at := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

    mock.ExpectQuery(regexp.QuoteMeta("FROM contact_messages WHERE message_type = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?")).
        WithArgs("feedback", 50, 0).
        WillReturnRows(sqlmock.NewRows(messageCols).
            AddRow(2, "sub-2", "feedback", "Giorgi", "0555123456", "g@example.ge", "ძალიან გემრიელი იყო", nil, nil, nil, at).
            AddRow(1, "sub-1", "feedback", "ანა", "0555123457", "a@example.ge", "მომსახურება კარგი იყო", nil, nil, nil, at))

    msgs, err := repo.List(context.Background(), "feedback", 0, -3)
    require.NoError(t, err)
    require.Len(t, msgs, 2)
    assert.Equal(t, uint64(2), msgs[0].ID)
    assert.Nil(t, msgs[0].Guests)

    mock.ExpectQuery(regexp.QuoteMeta("FROM contact_messages ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?")).
        WithArgs(10, 20).
        WillReturnRows(sqlmock.NewRows(messageCols))

    msgs, err = repo.List(context.Background(), "", 10, 20)
    require.NoError(t, err)
    assert.NotNil(t, msgs)
    assert.Empty(t, msgs)
}

func TestDelete(t *testing.T) {
    repo, mock := newMockRepo(t)
    del := regexp.QuoteMeta("DELETE FROM contact_messages WHERE id = ?")
    mock.ExpectExec(del).WithArgs(2).WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectExec(del).WithArgs(2).WillReturnResult(sqlmock.NewResult(0, 0))

    require.NoError(t, repo.Delete(context.Background(), 2))
    assert.ErrorIs(t, repo.Delete(context.Background(), 2), ErrNotFound)
}
