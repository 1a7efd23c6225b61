package service

import (
	"errors"
	"sort"
	"time"

	"prefect_board/internal/models"
	"prefect_board/internal/repository"
)

// 評分相關的領域錯誤
var (
	ErrInvalidStars   = errors.New("評分必須在 1 到 5 星之間")
	ErrCannotRate     = errors.New("此角色無法評分")
	ErrInvalidTarget  = errors.New("無法對此對象評分")
	ErrTargetNotFound = errors.New("評分對象不存在")
)

type RatingService struct {
	ratingRepo  repository.RatingRepository
	profileRepo repository.ProfileRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, profileRepo repository.ProfileRepository) *RatingService {
	return &RatingService{
		ratingRepo:  ratingRepo,
		profileRepo: profileRepo,
	}
}

// Submit 提交一筆評分
// 評分對象的角色以資料庫中存的為準，老師可以評學長和理事會成員，
// 理事會成員只能評學長。寫入和平均值重算由儲存層在同一個交易內完成。
func (s *RatingService) Submit(rater *models.Profile, targetUserID uint, stars int, feedback string) error {
	if stars < 1 || stars > 5 {
		return ErrInvalidStars
	}

	ratable := rater.Role.RatableRoles()
	if len(ratable) == 0 {
		return ErrCannotRate
	}

	target, err := s.profileRepo.FindByUserID(targetUserID)
	if err != nil {
		return ErrTargetNotFound
	}

	allowed := false
	for _, role := range ratable {
		if target.Role == role {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrInvalidTarget
	}

	rating := models.Rating{
		RaterID:   rater.UserID,
		TargetID:  targetUserID,
		Stars:     stars,
		Feedback:  feedback,
		CreatedAt: time.Now(),
	}

	return s.ratingRepo.Submit(&rating)
}

// Targets 取得評分者可以評分的對象列表，附上目前的平均分
func (s *RatingService) Targets(rater *models.Profile) ([]models.Profile, error) {
	ratable := rater.Role.RatableRoles()
	if len(ratable) == 0 {
		return nil, ErrCannotRate
	}

	profiles, err := s.profileRepo.FindByRoles(ratable)
	if err != nil {
		return nil, err
	}

	sort.Slice(profiles, func(i, j int) bool {
		pi, pj := profiles[i].Role.Precedence(), profiles[j].Role.Precedence()
		if pi != pj {
			return pi < pj
		}
		return profiles[i].Name < profiles[j].Name
	})

	return profiles, nil
}
