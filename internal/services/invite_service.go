package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teamspace-dev/teamspace-api/internal/models"
	"github.com/teamspace-dev/teamspace-api/internal/repository"
	"github.com/teamspace-dev/teamspace-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrInvalidInviteEmail   = errors.New("invite email cannot be empty")
	ErrInviteNotFound       = errors.New("invite not found")
	ErrInviteAlreadyUsed    = errors.New("invite was already accepted")
	ErrInviteEmailMismatch  = errors.New("invite was issued to a different email")
	ErrInviteCodeGeneration = errors.New("failed to generate invite code")
)

// InviteService issues guest invitations and converts accepted ones into
// guest access grants. It implements GuestInviter.
type InviteService struct {
	guestRepo repository.GuestAccessRepository
	userRepo  repository.UserRepository
}

// NewInviteService creates a new InviteService.
func NewInviteService(guestRepo repository.GuestAccessRepository, userRepo repository.UserRepository) *InviteService {
	return &InviteService{
		guestRepo: guestRepo,
		userRepo:  userRepo,
	}
}

// InviteByEmail records a guest invitation scoped to a single project.
// Delivery of the invitation email is handled outside this service.
func (s *InviteService) InviteByEmail(email string, projectID uint64) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidInviteEmail
	}

	code, err := utils.GenerateInviteCode()
	if err != nil {
		return ErrInviteCodeGeneration
	}

	invite := &models.GuestInvite{
		Email:     email,
		ProjectID: projectID,
		Code:      code,
	}

	if err := s.guestRepo.CreateInvite(invite); err != nil {
		return fmt.Errorf("failed to create invite: %w", err)
	}

	return nil
}

// AcceptInvite redeems an invitation code for the accepting user and grants
// them guest access to the invited project. The invite is bound to the
// invited email: a user with a different email cannot redeem it even with
// the code in hand.
func (s *InviteService) AcceptInvite(code string, userID uint64) (*models.GuestInvite, error) {
	invite, err := s.guestRepo.FindInviteByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, fmt.Errorf("failed to find invite: %w", err)
	}

	if invite.AcceptedAt != nil {
		return nil, ErrInviteAlreadyUsed
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if !strings.EqualFold(user.Email, invite.Email) {
		return nil, ErrInviteEmailMismatch
	}

	if err := s.guestRepo.Grant(invite.ProjectID, userID); err != nil {
		return nil, fmt.Errorf("failed to grant guest access: %w", err)
	}

	if err := s.guestRepo.MarkInviteAccepted(invite.ID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to mark invite accepted: %w", err)
	}

	return invite, nil
}
