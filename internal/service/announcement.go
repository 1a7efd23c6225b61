package service

import (
	"errors"
	"log"
	"sync"
	"time"

	"prefect_board/internal/models"
	"prefect_board/internal/repository"
	"prefect_board/internal/utils"
)

// 公告相關的領域錯誤
var (
	ErrAnnouncementNotFound = errors.New("公告不存在")
	ErrNotAnnouncer         = errors.New("此角色無法發布公告")
	ErrNotCreator           = errors.New("只有發布者本人可以刪除公告")
)

// AnnouncementView 公告列表的顯示結構，附上到期提示和相對時間
type AnnouncementView struct {
	models.Announcement
	ExpiringSoon bool   `json:"expiring_soon"`
	PostedAgo    string `json:"posted_ago"`
}

type AnnouncementService struct {
	announcementRepo repository.AnnouncementRepository
	board            *BoardManager

	sweepStop chan struct{}
	sweepOnce sync.Once
}

func NewAnnouncementService(announcementRepo repository.AnnouncementRepository, board *BoardManager) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		board:            board,
	}
}

// Create 發布一則新公告，只有允許的角色可以發布
func (s *AnnouncementService) Create(creator *models.Profile, title, summary, date, timeOfDay string) (*models.Announcement, error) {
	if !creator.Role.CanPostAnnouncements() {
		return nil, ErrNotAnnouncer
	}

	announcement := models.Announcement{
		Title:       title,
		Summary:     summary,
		Date:        date,
		Time:        timeOfDay,
		CreatorID:   creator.UserID,
		CreatorName: creator.Name,
	}

	if err := s.announcementRepo.Create(&announcement); err != nil {
		return nil, err
	}

	s.board.BroadcastCreated(&announcement)
	return &announcement, nil
}

// List 取得目前可見的公告，新的在前，過期的一律過濾掉
func (s *AnnouncementService) List(now time.Time) ([]AnnouncementView, error) {
	announcements, err := s.announcementRepo.FindAll()
	if err != nil {
		return nil, err
	}

	views := make([]AnnouncementView, 0, len(announcements))
	for _, a := range announcements {
		if a.Expired(now) {
			continue
		}
		views = append(views, AnnouncementView{
			Announcement: a,
			ExpiringSoon: a.ExpiringSoon(now),
			PostedAgo:    utils.TimeAgo(a.CreatedAt, now),
		})
	}

	return views, nil
}

// Recent 取得最近的 limit 則可見公告，首頁摘要用
func (s *AnnouncementService) Recent(now time.Time, limit int) ([]AnnouncementView, error) {
	views, err := s.List(now)
	if err != nil {
		return nil, err
	}
	if len(views) > limit {
		views = views[:limit]
	}
	return views, nil
}

// Delete 刪除一則公告，只有具發布權限的發布者本人可以刪除
func (s *AnnouncementService) Delete(actor *models.Profile, id string) error {
	announcement, err := s.announcementRepo.FindByID(id)
	if err != nil {
		return ErrAnnouncementNotFound
	}

	if !actor.Role.CanPostAnnouncements() {
		return ErrNotAnnouncer
	}
	if announcement.CreatorID != actor.UserID {
		return ErrNotCreator
	}

	if err := s.announcementRepo.Delete(id); err != nil {
		return err
	}

	s.board.BroadcastDeleted(id)
	return nil
}

// Sweep 清除所有已過期的公告，回傳清除的數量
// 判斷用的界線和 List 的顯示過濾相同，公告消失後不會再出現
func (s *AnnouncementService) Sweep(now time.Time) (int, error) {
	announcements, err := s.announcementRepo.FindAll()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, a := range announcements {
		if !a.Expired(now) {
			continue
		}
		if err := s.announcementRepo.Delete(a.ID); err != nil {
			log.Printf("announcement sweep: delete %s failed: %v", a.ID, err)
			continue
		}
		s.board.BroadcastExpired(a.ID)
		removed++
	}

	return removed, nil
}

// StartSweeper 啟動定期清除過期公告的背景工作
func (s *AnnouncementService) StartSweeper(interval time.Duration) {
	s.sweepStop = make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if removed, err := s.Sweep(time.Now()); err != nil {
					log.Printf("announcement sweep error: %v", err)
				} else if removed > 0 {
					log.Printf("announcement sweep removed %d expired entries", removed)
				}
			case <-s.sweepStop:
				return
			}
		}
	}()
}

// StopSweeper 停止背景清除工作
func (s *AnnouncementService) StopSweeper() {
	if s.sweepStop == nil {
		return
	}
	s.sweepOnce.Do(func() {
		close(s.sweepStop)
	})
}
