//go:build unit

package reservation_test

import (
	"strings"
	"testing"
	"time"

	"lab-dashboard/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jst = time.FixedZone("JST", 9*60*60)

func mustSlot(t *testing.T, date, start, end string) reservation.Slot {
	t.Helper()
	s, err := reservation.NewSlot(date, start, end)
	require.NoError(t, err)
	return s
}

func mustReservation(t *testing.T, slot reservation.Slot, now time.Time) *reservation.Reservation {
	t.Helper()
	owner, err := reservation.NewOwner("Alice")
	require.NoError(t, err)
	ref := reservation.EquipmentRef{ID: uuid.New(), Name: "Confocal Microscope"}
	r, err := reservation.NewReservation(ref, slot, owner, reservation.Note{}, uuid.New(), now)
	require.NoError(t, err)
	return r
}

func TestNewSlot(t *testing.T) {
	tests := []struct {
		name             string
		date, start, end string
		wantErr          bool
	}{
		{name: "通常の時間帯", date: "2024-06-01", start: "09:00", end: "10:30"},
		{name: "終了00:00は受け付ける", date: "2024-06-01", start: "22:00", end: "00:00"},
		{name: "開始と終了が逆でも受け付ける", date: "2024-06-01", start: "15:00", end: "09:00"},
		{name: "ゼロ埋めなしの日付NG", date: "2024-6-1", start: "09:00", end: "10:00", wantErr: true},
		{name: "存在しない日付NG", date: "2024-02-30", start: "09:00", end: "10:00", wantErr: true},
		{name: "秒付きの時刻NG", date: "2024-06-01", start: "09:00:00", end: "10:00", wantErr: true},
		{name: "24:00NG", date: "2024-06-01", start: "09:00", end: "24:00", wantErr: true},
		{name: "空の終了NG", date: "2024-06-01", start: "09:00", end: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := reservation.NewSlot(tt.date, tt.start, tt.end)
			if tt.wantErr {
				require.ErrorIs(t, err, reservation.ErrInvalidSlot)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.date, slot.Date().String())
			assert.Equal(t, tt.start, slot.Start().String())
			assert.Equal(t, tt.end, slot.End().String())
		})
	}
}

func TestOwnerAndNote(t *testing.T) {
	owner, err := reservation.NewOwner("  Project X ")
	require.NoError(t, err)
	assert.Equal(t, "Project X", owner.String())

	_, err = reservation.NewOwner(" ")
	require.ErrorIs(t, err, reservation.ErrInvalidOwner)
	_, err = reservation.NewOwner(strings.Repeat("a", reservation.MaxOwnerLength+1))
	require.ErrorIs(t, err, reservation.ErrInvalidOwner)

	note, err := reservation.NewNote("  ")
	require.NoError(t, err)
	assert.True(t, note.IsEmpty())
	_, err = reservation.NewNote(strings.Repeat("あ", reservation.MaxNoteLength+1))
	require.ErrorIs(t, err, reservation.ErrNoteTooLong)
}

func TestReservation(t *testing.T) {
	now := time.Date(2024, time.June, 1, 8, 0, 0, 0, jst)

	t.Run("機器なしは作成できない", func(t *testing.T) {
		_, err := reservation.NewReservation(reservation.EquipmentRef{Name: "Orphan"},
			mustSlot(t, "2024-06-01", "09:00", "10:00"), reservation.Owner{}, reservation.Note{}, uuid.New(), now)
		require.ErrorIs(t, err, reservation.ErrEquipmentMissing)
	})

	t.Run("予約はエンジンの入力形式に変換される", func(t *testing.T) {
		r := mustReservation(t, mustSlot(t, "2024-06-01", "22:00", "00:00"), now)

		got := r.Booking()
		if diff := cmp.Diff(r.ID(), got.ID); diff != "" {
			t.Errorf("ID mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, r.Equipment().ID, got.EquipmentID)
		assert.Equal(t, "Confocal Microscope", got.EquipmentName)
		assert.Equal(t, "2024-06-01", got.Date)
		assert.Equal(t, "22:00", got.StartTime)
		assert.Equal(t, "00:00", got.EndTime)
		assert.Equal(t, "Alice", got.Owner)
	})

	t.Run("変更は更新日時を進める", func(t *testing.T) {
		r := mustReservation(t, mustSlot(t, "2024-06-01", "09:00", "10:00"), now)
		later := now.Add(time.Hour)

		r.Reschedule(mustSlot(t, "2024-06-02", "09:00", "10:00"), later)
		assert.Equal(t, "2024-06-02", r.Slot().Date().String())
		assert.True(t, r.UpdatedAt().Equal(later))
		assert.True(t, r.CreatedAt().Equal(now))

		target := reservation.EquipmentRef{ID: uuid.New(), Name: "PCR Machine"}
		require.NoError(t, r.MoveTo(target, later))
		assert.Equal(t, target, r.Equipment())
		require.ErrorIs(t, r.MoveTo(reservation.EquipmentRef{}, later), reservation.ErrEquipmentMissing)
		assert.Equal(t, target, r.Equipment())
	})
}
