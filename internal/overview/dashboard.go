package overview

import (
	"context"

	"golang.org/x/sync/errgroup"

	"syntheo-client/internal/domain"
)

// Source 仪表盘所需的后端读取（apiclient.Client 实现）
type Source interface {
	ListNotes(ctx context.Context, f domain.NoteFilter) ([]domain.Note, error)
	ListRooms(ctx context.Context, floor *int) ([]domain.Room, error)
	ListRounds(ctx context.Context, f domain.RoundFilter) ([]domain.MedicationRound, error)
	ListAnnouncements(ctx context.Context) ([]domain.Announcement, error)
}

// Dashboard 首页数据
type Dashboard struct {
	Notes         []domain.Note
	Rooms         []domain.Room
	Rounds        []domain.MedicationRound
	Announcements []domain.Announcement

	ByRoom  map[int]UrgencySummary
	Buckets []RoundBucket
	Unread  int
}

// LoadDashboard 并发读取未处理 melding、房间、当天给药记录和广播
// 任一请求失败即返回该错误，其余请求随 ctx 取消
func LoadDashboard(ctx context.Context, src Source, userID int, date string) (*Dashboard, error) {
	var d Dashboard
	unresolved := false

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		notes, err := src.ListNotes(gctx, domain.NoteFilter{IsResolved: &unresolved})
		d.Notes = notes
		return err
	})
	g.Go(func() error {
		rooms, err := src.ListRooms(gctx, nil)
		d.Rooms = rooms
		return err
	})
	g.Go(func() error {
		rounds, err := src.ListRounds(gctx, domain.RoundFilter{Date: date})
		d.Rounds = rounds
		return err
	})
	g.Go(func() error {
		anns, err := src.ListAnnouncements(gctx)
		d.Announcements = anns
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.ByRoom = UrgencyByRoom(d.Rooms, d.Notes)
	d.Buckets = BucketRounds(d.Rounds)
	d.Unread = UnreadCount(d.Announcements, userID)
	return &d, nil
}
