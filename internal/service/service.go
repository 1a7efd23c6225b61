package service

import (
	"prefect_board/internal/repository"
)

type Services struct {
	User         *UserService
	Announcement *AnnouncementService
	Rating       *RatingService
	Board        *BoardManager
}

func NewServices(repos *repository.Repositories) *Services {
	board := NewBoardManager()

	userService := NewUserService(repos.User, repos.Profile)
	announcementService := NewAnnouncementService(repos.Announcement, board)
	ratingService := NewRatingService(repos.Rating, repos.Profile)

	return &Services{
		User:         userService,
		Announcement: announcementService,
		Rating:       ratingService,
		Board:        board,
	}
}
