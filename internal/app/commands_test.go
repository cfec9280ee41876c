package app_test

import (
	"context"
	"errors"
	"testing"

	"hotel_rooms/internal/app"
	"hotel_rooms/internal/domain"
)

type fakeRepo struct {
	rooms []domain.Room
	err   error
}

func (f *fakeRepo) UpsertRoom(ctx context.Context, r domain.Room) error {
	if f.err != nil {
		return f.err
	}
	f.rooms = append(f.rooms, r)
	return nil
}
func (f *fakeRepo) ListRooms(ctx context.Context) ([]domain.Room, error) { return f.rooms, nil }

func TestSeedRoom_Upserts(t *testing.T) {
	repo := &fakeRepo{}
	svc := app.NewSeedService(repo)

	r, _ := mustCatalog(t).FindBySlug("family-room")
	if err := svc.SeedRoom(context.Background(), r); err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(repo.rooms) != 1 || repo.rooms[0].ID != 3 {
		t.Fatalf("unexpected repo state: %+v", repo.rooms)
	}
}

func TestSeedRoom_WrapsRepoError(t *testing.T) {
	boom := errors.New("boom")
	svc := app.NewSeedService(&fakeRepo{err: boom})
	r, _ := mustCatalog(t).FindBySlug("family-room")
	if err := svc.SeedRoom(context.Background(), r); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
