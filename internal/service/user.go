package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"prefect_board/internal/models"
	"prefect_board/internal/repository"
	"prefect_board/internal/utils"
)

// 認證相關的領域錯誤
var (
	ErrEmailTaken         = errors.New("此電子郵件已被註冊")
	ErrInvalidCredentials = errors.New("電子郵件或密碼錯誤")
	ErrPermissionDenied   = errors.New("權限不足")
)

// 應用程式的頂層狀態，由 token 和個人資料即時計算，不在伺服器端緩存
const (
	SessionLoggedIn          = "logged_in"
	SessionProfileIncomplete = "profile_incomplete"
)

type UserService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

func NewUserService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// Register 建立帳號和個人資料並簽發 token
// 電子郵件已註冊時回傳 ErrEmailTaken，不會留下重複的個人資料
func (s *UserService) Register(email, password, name string, role models.Role) (string, *models.Profile, error) {
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return "", nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := models.User{
		Email:    email,
		Password: string(hashedPassword),
	}
	profile := models.Profile{
		Name:       name,
		Role:       role,
		PhotoURL:   placeholderPhotoURL(name),
		IsComplete: true,
	}

	// 帳號和個人資料在同一個交易中建立
	if err := s.userRepo.CreateWithProfile(&user, &profile); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, string(profile.Role))
	if err != nil {
		return "", nil, err
	}

	return token, &profile, nil
}

// Login 驗證帳號密碼並簽發 token
// 帳號不存在和密碼錯誤回傳同一個錯誤，不讓外部探測帳號是否存在
func (s *UserService) Login(email, password string) (string, *models.Profile, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	profile, err := s.GetProfile(user.ID)
	if err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, string(profile.Role))
	if err != nil {
		return "", nil, err
	}

	return token, profile, nil
}

// GetProfile 取得用戶的個人資料
// 資料不存在時視為「還沒有資料」，自動建立一份最小的預設資料讓流程繼續
func (s *UserService) GetProfile(userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.provisionDefaultProfile(userID)
}

// provisionDefaultProfile 為沒有個人資料的帳號建立預設資料
// 名稱取自電子郵件的本地部分，角色預設為學長，用戶之後必須完成設置
func (s *UserService) provisionDefaultProfile(userID uint) (*models.Profile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	name := capitalize(strings.SplitN(user.Email, "@", 2)[0])
	if name == "" {
		name = "User"
	}

	profile := models.Profile{
		UserID:     userID,
		Name:       name,
		Role:       models.RolePrefect,
		PhotoURL:   placeholderPhotoURL(name),
		IsComplete: false,
	}

	if err := s.profileRepo.Create(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// UpdateProfile 更新個人資料並標記為已完成設置
func (s *UserService) UpdateProfile(userID uint, name string, role models.Role, photoURL string) (*models.Profile, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	profile.Name = name
	profile.Role = role
	if photoURL != "" {
		profile.PhotoURL = photoURL
	}
	profile.IsComplete = true

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// SessionState 計算個人資料對應的頂層狀態
func (s *UserService) SessionState(profile *models.Profile) string {
	if !profile.IsComplete {
		return SessionProfileIncomplete
	}
	return SessionLoggedIn
}

// Roster 取得完整的學生名冊，只有老師可以查看
// 依職位次序排列，同職位按名稱排序
func (s *UserService) Roster(viewer models.Role) ([]models.Profile, error) {
	if !viewer.CanViewRoster() {
		return nil, ErrPermissionDenied
	}

	profiles, err := s.profileRepo.FindByRoles(models.StudentRoles())
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

// capitalize 將字串的第一個字元轉為大寫，按字元而非位元組處理
func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

// placeholderPhotoURL 產生預設的頭像佔位圖網址
func placeholderPhotoURL(name string) string {
	initial := "U"
	if name != "" {
		first, _ := utf8.DecodeRuneInString(name)
		initial = string(unicode.ToUpper(first))
	}
	return fmt.Sprintf("https://placehold.co/100x100/A78BFA/ffffff?text=%s", initial)
}
