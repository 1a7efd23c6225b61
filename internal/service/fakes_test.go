package service

import (
	"sort"
	"strconv"
	"sync"

	"gorm.io/gorm"

	"prefect_board/internal/models"
)

// 測試用的記憶體版 repositories，行為對齊 GORM 實作：
// 找不到資料回傳 gorm.ErrRecordNotFound，評分提交時同步重算平均。

type fakeUserRepo struct {
	mu       sync.Mutex
	nextID   uint
	byEmail  map[string]*models.User
	profiles *fakeProfileRepo
}

func newFakeUserRepo(profiles *fakeProfileRepo) *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User), profiles: profiles}
}

func (r *fakeUserRepo) CreateWithProfile(user *models.User, profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.byEmail[user.Email] = &stored

	profile.UserID = user.ID
	return r.profiles.Create(profile)
}

func (r *fakeUserRepo) addUser(email, password string) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	user := &models.User{Email: email, Password: password}
	user.ID = r.nextID
	r.byEmail[email] = user
	return user
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.byEmail {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	nextID   uint
	byUserID map[uint]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byUserID: make(map[uint]*models.Profile)}
}

func (r *fakeProfileRepo) Create(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	profile.ID = r.nextID
	stored := *profile
	r.byUserID[profile.UserID] = &stored
	return nil
}

func (r *fakeProfileRepo) FindByUserID(userID uint) (*models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.byUserID[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeProfileRepo) Update(profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *profile
	r.byUserID[profile.UserID] = &stored
	return nil
}

func (r *fakeProfileRepo) FindByRoles(roles []models.Role) ([]models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var profiles []models.Profile
	for _, profile := range r.byUserID {
		for _, role := range roles {
			if profile.Role == role {
				profiles = append(profiles, *profile)
				break
			}
		}
	}
	return profiles, nil
}

func (r *fakeProfileRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byUserID)
}

type fakeAnnouncementRepo struct {
	mu     sync.Mutex
	nextID int
	items  []models.Announcement
}

func newFakeAnnouncementRepo() *fakeAnnouncementRepo {
	return &fakeAnnouncementRepo{}
}

func (r *fakeAnnouncementRepo) Create(announcement *models.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if announcement.ID == "" {
		r.nextID++
		announcement.ID = "announcement-" + strconv.Itoa(r.nextID)
	}
	r.items = append(r.items, *announcement)
	return nil
}

func (r *fakeAnnouncementRepo) FindByID(id string) (*models.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.ID == id {
			copied := item
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAnnouncementRepo) FindAll() ([]models.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]models.Announcement, len(r.items))
	copy(items, r.items)
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *fakeAnnouncementRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeRatingRepo struct {
	mu       sync.Mutex
	ratings  []models.Rating
	profiles *fakeProfileRepo
}

func newFakeRatingRepo(profiles *fakeProfileRepo) *fakeRatingRepo {
	return &fakeRatingRepo{profiles: profiles}
}

func (r *fakeRatingRepo) Submit(rating *models.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ratings = append(r.ratings, *rating)

	// 對齊真實實作：寫入後重新讀取全部評分來計算平均
	total, count := 0, 0
	for _, stored := range r.ratings {
		if stored.TargetID == rating.TargetID {
			total += stored.Stars
			count++
		}
	}

	profile, err := r.profiles.FindByUserID(rating.TargetID)
	if err != nil {
		return err
	}
	profile.AverageRating = float64(total) / float64(count)
	profile.TotalRatings = count
	return r.profiles.Update(profile)
}

func (r *fakeRatingRepo) FindByTargetID(targetID uint) ([]models.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ratings []models.Rating
	for _, rating := range r.ratings {
		if rating.TargetID == targetID {
			ratings = append(ratings, rating)
		}
	}
	return ratings, nil
}
