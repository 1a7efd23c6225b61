package service

import (
	"errors"
	"testing"
	"time"

	"prefect_board/internal/models"
)

func newAnnouncementServiceForTest() (*AnnouncementService, *fakeAnnouncementRepo) {
	repo := newFakeAnnouncementRepo()
	return NewAnnouncementService(repo, NewBoardManager()), repo
}

func announcerProfile(userID uint, name string, role models.Role) *models.Profile {
	return &models.Profile{UserID: userID, Name: name, Role: role, IsComplete: true}
}

func TestCreateRequiresAnnouncerRole(t *testing.T) {
	svc, _ := newAnnouncementServiceForTest()

	tests := []struct {
		name    string
		role    models.Role
		wantErr error
	}{
		{name: "teacher", role: models.RoleTeacher, wantErr: nil},
		{name: "ketua", role: models.RoleCouncilKetua, wantErr: nil},
		{name: "penerangan", role: models.RoleCouncilPeneranganKerohanianI, wantErr: nil},
		{name: "prefect", role: models.RolePrefect, wantErr: ErrNotAnnouncer},
		{name: "non announcer council", role: models.RoleCouncilKeselamatanI, wantErr: ErrNotAnnouncer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := announcerProfile(1, "Kamal", tt.role)
			_, err := svc.Create(creator, "Spot check", "Gate duty spot check this Friday", "2025-03-07", "07:10")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateStampsCreator(t *testing.T) {
	svc, _ := newAnnouncementServiceForTest()

	creator := announcerProfile(7, "Kamal", models.RoleCouncilKetua)
	announcement, err := svc.Create(creator, "Assembly", "Special assembly on Monday", "2025-03-10", "07:30")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if announcement.CreatorID != 7 || announcement.CreatorName != "Kamal" {
		t.Errorf("creator stamp = (%d, %q), want (7, %q)", announcement.CreatorID, announcement.CreatorName, "Kamal")
	}
	if announcement.ID == "" {
		t.Error("created announcement should have an ID")
	}
}

func TestListFiltersExpiredAndFlagsExpiring(t *testing.T) {
	svc, repo := newAnnouncementServiceForTest()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	repo.Create(&models.Announcement{Title: "fresh", CreatedAt: now.Add(-2 * time.Hour)})
	repo.Create(&models.Announcement{Title: "expiring", CreatedAt: now.Add(-20 * time.Hour)})
	repo.Create(&models.Announcement{Title: "expired", CreatedAt: now.Add(-25 * time.Hour)})

	views, err := svc.List(now)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	if len(views) != 2 {
		t.Fatalf("List() size = %d, want 2", len(views))
	}
	// 新的在前
	if views[0].Title != "fresh" || views[1].Title != "expiring" {
		t.Errorf("List() order = %q, %q; want fresh then expiring", views[0].Title, views[1].Title)
	}
	if views[0].ExpiringSoon {
		t.Error("fresh announcement should not be flagged as expiring")
	}
	if !views[1].ExpiringSoon {
		t.Error("20 hour old announcement should be flagged as expiring")
	}
	if views[1].PostedAgo != "20 hours ago" {
		t.Errorf("PostedAgo = %q, want %q", views[1].PostedAgo, "20 hours ago")
	}
}

func TestRecentLimitsResults(t *testing.T) {
	svc, repo := newAnnouncementServiceForTest()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 8; i++ {
		repo.Create(&models.Announcement{Title: "entry", CreatedAt: now.Add(-time.Duration(i) * time.Minute)})
	}

	views, err := svc.Recent(now, 5)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(views) != 5 {
		t.Errorf("Recent() size = %d, want 5", len(views))
	}
}

func TestDeletePermissions(t *testing.T) {
	svc, repo := newAnnouncementServiceForTest()

	creator := announcerProfile(1, "Kamal", models.RoleCouncilKetua)
	announcement, err := svc.Create(creator, "Spot check", "Gate duty spot check", "2025-03-07", "07:10")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// 沒有發布權限的角色不能刪除
	prefect := announcerProfile(2, "Aina", models.RolePrefect)
	if err := svc.Delete(prefect, announcement.ID); !errors.Is(err, ErrNotAnnouncer) {
		t.Errorf("prefect delete error = %v, want ErrNotAnnouncer", err)
	}

	// 有發布權限但不是發布者本人也不能刪除
	other := announcerProfile(3, "Cikgu Tan", models.RoleTeacher)
	if err := svc.Delete(other, announcement.ID); !errors.Is(err, ErrNotCreator) {
		t.Errorf("non-creator delete error = %v, want ErrNotCreator", err)
	}

	// 發布者本人可以刪除
	if err := svc.Delete(creator, announcement.ID); err != nil {
		t.Fatalf("creator delete error: %v", err)
	}
	if _, err := repo.FindByID(announcement.ID); err == nil {
		t.Error("deleted announcement should be gone from the store")
	}

	// 刪除不存在的公告
	if err := svc.Delete(creator, "missing"); !errors.Is(err, ErrAnnouncementNotFound) {
		t.Errorf("missing delete error = %v, want ErrAnnouncementNotFound", err)
	}
}

func TestSweepRemovesExpiredFromStore(t *testing.T) {
	svc, repo := newAnnouncementServiceForTest()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	repo.Create(&models.Announcement{Title: "fresh", CreatedAt: now.Add(-time.Hour)})
	repo.Create(&models.Announcement{Title: "old", CreatedAt: now.Add(-25 * time.Hour)})
	repo.Create(&models.Announcement{Title: "boundary", CreatedAt: now.Add(-24 * time.Hour)})

	removed, err := svc.Sweep(now)
	if err != nil {
		t.Fatalf("Sweep() error: %v", err)
	}
	// 超過和剛好到達界線的都要清掉
	if removed != 2 {
		t.Errorf("Sweep() removed = %d, want 2", removed)
	}

	remaining, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll() error: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Title != "fresh" {
		t.Errorf("remaining after sweep = %v, want only the fresh entry", remaining)
	}

	// 顯示過濾和清除共用同一條界線：清完後列表和儲存內容一致
	views, err := svc.List(now)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(views) != len(remaining) {
		t.Errorf("visible = %d, stored = %d; the two must agree", len(views), len(remaining))
	}
}
