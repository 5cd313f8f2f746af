package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/teamspace-dev/teamspace-api/internal/database"
	"github.com/teamspace-dev/teamspace-api/internal/models"
	"github.com/teamspace-dev/teamspace-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type projectTestEnv struct {
	db            *gorm.DB
	service       *ProjectService
	inviteService *InviteService
}

func setupProjectTestEnv(t *testing.T) projectTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Project{},
		&models.ProjectMember{},
		&models.GuestAccess{},
		&models.GuestInvite{},
		&models.FollowedProject{},
		&models.ProjectVisit{},
		&models.Task{},
		&models.Discussion{},
		&models.Page{},
		&models.PinnedProject{},
		&models.Notification{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	guestRepo := repository.NewGuestAccessRepository(db)
	userRepo := repository.NewUserRepository(db)
	inviteService := NewInviteService(guestRepo, userRepo)
	service := NewProjectService(
		repository.NewProjectRepository(db),
		repository.NewMemberRepository(db),
		guestRepo,
		repository.NewEngagementRepository(db),
		userRepo,
		repository.NewProjectCascader(db),
		inviteService,
		false,
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return projectTestEnv{
		db:            db,
		service:       service,
		inviteService: inviteService,
	}
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "hashed",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestProject(t *testing.T, env projectTestEnv, name string, isPrivate bool, creatorID uint64) *models.Project {
	t.Helper()
	project, err := env.service.CreateProject(CreateProjectInput{
		Name:      name,
		IsPrivate: isPrivate,
		CreatorID: creatorID,
	})
	require.NoError(t, err)
	return project
}

func countMembers(t *testing.T, db *gorm.DB, projectID uint64) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.ProjectMember{}).
		Where("project_id = ?", projectID).
		Count(&count).Error)
	return count
}

func TestProjectService_CreateProject_AddsCreatorAsMember(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	project := createTestProject(t, env, "Launch", true, creator.ID)

	require.NotEmpty(t, project.Icon, "expected an icon to be assigned")

	var member models.ProjectMember
	require.NoError(t, env.db.Where("project_id = ? AND user_id = ?", project.ID, creator.ID).
		First(&member).Error)
	require.False(t, member.NotifyNewPosts)
	require.False(t, member.NotifyNewComments)
	require.EqualValues(t, 1, countMembers(t, env.db, project.ID))
}

func TestProjectService_AddMember_Idempotent(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	other := createTestUser(t, env.db, "other@example.com", models.RoleMember)
	project := createTestProject(t, env, "Launch", false, creator.ID)

	require.NoError(t, env.service.AddMember(project.ID, other.ID))
	require.NoError(t, env.service.AddMember(project.ID, other.ID))

	require.EqualValues(t, 2, countMembers(t, env.db, project.ID))
}

func TestProjectService_Leave_NonMemberIsNoop(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	stranger := createTestUser(t, env.db, "stranger@example.com", models.RoleMember)
	project := createTestProject(t, env, "Launch", false, creator.ID)

	require.NoError(t, env.service.Leave(project.ID, stranger.ID))
	require.NoError(t, env.service.Leave(project.ID, stranger.ID))

	require.EqualValues(t, 1, countMembers(t, env.db, project.ID))
}

func TestProjectService_Leave_RemovesMembership(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	joiner := createTestUser(t, env.db, "joiner@example.com", models.RoleMember)
	project := createTestProject(t, env, "Launch", false, creator.ID)

	require.NoError(t, env.service.Join(project.ID, joiner.ID))
	require.EqualValues(t, 2, countMembers(t, env.db, project.ID))

	require.NoError(t, env.service.Leave(project.ID, joiner.ID))
	require.EqualValues(t, 1, countMembers(t, env.db, project.ID))
}

func TestProjectService_UpdateNotificationSettings(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	stranger := createTestUser(t, env.db, "stranger@example.com", models.RoleMember)
	project := createTestProject(t, env, "Launch", false, creator.ID)

	require.NoError(t, env.service.UpdateNotificationSettings(project.ID, creator.ID, true, true))

	var member models.ProjectMember
	require.NoError(t, env.db.Where("project_id = ? AND user_id = ?", project.ID, creator.ID).
		First(&member).Error)
	require.True(t, member.NotifyNewPosts)
	require.True(t, member.NotifyNewComments)

	// Updating a non-member changes nothing and creates no membership
	require.NoError(t, env.service.UpdateNotificationSettings(project.ID, stranger.ID, true, true))
	require.EqualValues(t, 1, countMembers(t, env.db, project.ID))
}

func TestProjectService_FollowIsIdempotent(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	project := createTestProject(t, env, "Launch", false, creator.ID)

	require.NoError(t, env.service.Follow(project.ID, creator.ID))
	require.NoError(t, env.service.Follow(project.ID, creator.ID))

	var count int64
	require.NoError(t, env.db.Model(&models.FollowedProject{}).
		Where("project_id = ? AND user_id = ?", project.ID, creator.ID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestProjectService_Unfollow(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	project := createTestProject(t, env, "Launch", false, creator.ID)

	require.NoError(t, env.service.Follow(project.ID, creator.ID))
	require.NoError(t, env.service.Unfollow(project.ID, creator.ID))

	var count int64
	require.NoError(t, env.db.Model(&models.FollowedProject{}).
		Where("project_id = ?", project.ID).
		Count(&count).Error)
	require.EqualValues(t, 0, count)

	// A second unfollow has nothing to delete and reports it
	err := env.service.Unfollow(project.ID, creator.ID)
	require.ErrorIs(t, err, ErrFollowNotFound)
}

func TestProjectService_TrackVisit_Upserts(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	project := createTestProject(t, env, "Launch", false, creator.ID)

	require.NoError(t, env.service.TrackVisit(project.ID, creator.ID))

	var first models.ProjectVisit
	require.NoError(t, env.db.Where("project_id = ? AND user_id = ?", project.ID, creator.ID).
		First(&first).Error)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, env.service.TrackVisit(project.ID, creator.ID))

	var count int64
	require.NoError(t, env.db.Model(&models.ProjectVisit{}).
		Where("project_id = ? AND user_id = ?", project.ID, creator.ID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)

	var second models.ProjectVisit
	require.NoError(t, env.db.Where("project_id = ? AND user_id = ?", project.ID, creator.ID).
		First(&second).Error)
	require.True(t, second.LastVisit.After(first.LastVisit))
}

func TestProjectService_TrackVisit_SkippedWhenReadOnly(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	project := createTestProject(t, env, "Launch", false, creator.ID)

	env.service.SetReadOnly(true)
	require.NoError(t, env.service.TrackVisit(project.ID, creator.ID))

	var count int64
	require.NoError(t, env.db.Model(&models.ProjectVisit{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestProjectService_MoveToTeam(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	project := createTestProject(t, env, "Launch", false, creator.ID)

	team := models.Team{Name: "Platform"}
	require.NoError(t, env.db.Create(&team).Error)

	task := models.Task{Title: "Ship it", ProjectID: project.ID}
	require.NoError(t, env.db.Create(&task).Error)
	discussion := models.Discussion{Title: "Kickoff", ProjectID: project.ID}
	require.NoError(t, env.db.Create(&discussion).Error)

	// Nil team is a no-op
	require.NoError(t, env.service.MoveToTeam(project.ID, nil))

	require.NoError(t, env.service.MoveToTeam(project.ID, &team.ID))

	var moved models.Project
	require.NoError(t, env.db.First(&moved, project.ID).Error)
	require.NotNil(t, moved.TeamID)
	require.Equal(t, team.ID, *moved.TeamID)

	var movedTask models.Task
	require.NoError(t, env.db.First(&movedTask, task.ID).Error)
	require.NotNil(t, movedTask.TeamID)
	require.Equal(t, team.ID, *movedTask.TeamID)

	var movedDiscussion models.Discussion
	require.NoError(t, env.db.First(&movedDiscussion, discussion.ID).Error)
	require.NotNil(t, movedDiscussion.TeamID)
	require.Equal(t, team.ID, *movedDiscussion.TeamID)

	// Re-running with the same team converges without touching anything new
	require.NoError(t, env.service.MoveToTeam(project.ID, &team.ID))
}

func TestProjectService_MoveToTeam_SameTeamLeavesDependentsAlone(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)

	team := models.Team{Name: "Platform"}
	require.NoError(t, env.db.Create(&team).Error)

	project, err := env.service.CreateProject(CreateProjectInput{
		Name:      "Launch",
		TeamID:    &team.ID,
		CreatorID: creator.ID,
	})
	require.NoError(t, err)

	// Task deliberately left on no team: a same-team move must not touch it
	task := models.Task{Title: "Ship it", ProjectID: project.ID}
	require.NoError(t, env.db.Create(&task).Error)

	require.NoError(t, env.service.MoveToTeam(project.ID, &team.ID))

	var untouched models.Task
	require.NoError(t, env.db.First(&untouched, task.ID).Error)
	require.Nil(t, untouched.TeamID)
}

func TestProjectService_MergeWithProject_InvalidTarget(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	project := createTestProject(t, env, "Launch", false, creator.ID)

	err := env.service.MergeWithProject(project.ID, 9999)
	require.ErrorIs(t, err, ErrInvalidMergeTarget)
	require.Contains(t, err.Error(), "9999")

	// Source is untouched
	var source models.Project
	require.NoError(t, env.db.First(&source, project.ID).Error)
	require.Equal(t, "Launch", source.Name)
}

func TestProjectService_MergeWithProject_SelfOrZeroIsNoop(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	project := createTestProject(t, env, "Launch", false, creator.ID)

	require.NoError(t, env.service.MergeWithProject(project.ID, 0))
	require.NoError(t, env.service.MergeWithProject(project.ID, project.ID))

	var count int64
	require.NoError(t, env.db.Model(&models.Project{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestProjectService_MergeWithProject_MovesDependents(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	shared := createTestUser(t, env.db, "shared@example.com", models.RoleMember)
	onlySource := createTestUser(t, env.db, "source-only@example.com", models.RoleMember)

	source := createTestProject(t, env, "Old", false, creator.ID)
	target := createTestProject(t, env, "New", false, creator.ID)

	// shared is a member of both; onlySource only of the source
	require.NoError(t, env.service.AddMember(source.ID, shared.ID))
	require.NoError(t, env.service.AddMember(target.ID, shared.ID))
	require.NoError(t, env.service.AddMember(source.ID, onlySource.ID))

	task := models.Task{Title: "Carry over", ProjectID: source.ID}
	require.NoError(t, env.db.Create(&task).Error)

	require.NoError(t, env.service.Follow(source.ID, shared.ID))
	require.NoError(t, env.service.Follow(target.ID, shared.ID))

	require.NoError(t, env.service.MergeWithProject(source.ID, target.ID))

	// Source project is gone
	var gone models.Project
	err := env.db.First(&gone, source.ID).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Task now belongs to the target
	var movedTask models.Task
	require.NoError(t, env.db.First(&movedTask, task.ID).Error)
	require.Equal(t, target.ID, movedTask.ProjectID)

	// Membership collapsed: creator, shared and onlySource, once each
	require.EqualValues(t, 3, countMembers(t, env.db, target.ID))
	require.EqualValues(t, 0, countMembers(t, env.db, source.ID))

	// Follows collapsed onto the target
	var follows int64
	require.NoError(t, env.db.Model(&models.FollowedProject{}).
		Where("project_id = ? AND user_id = ?", target.ID, shared.ID).
		Count(&follows).Error)
	require.EqualValues(t, 1, follows)
}

func TestProjectService_DeleteProject_Cascades(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	guest := createTestUser(t, env.db, "guest@example.com", models.RoleGuest)
	project := createTestProject(t, env, "Doomed", false, creator.ID)

	require.NoError(t, env.db.Create(&models.Task{Title: "T", ProjectID: project.ID}).Error)
	require.NoError(t, env.db.Create(&models.Discussion{Title: "D", ProjectID: project.ID}).Error)
	require.NoError(t, env.db.Create(&models.Page{Title: "P", ProjectID: project.ID}).Error)
	require.NoError(t, env.service.Follow(project.ID, creator.ID))
	require.NoError(t, env.service.TrackVisit(project.ID, creator.ID))
	require.NoError(t, env.service.GrantGuestAccess(project.ID, guest.ID))

	notification := models.Notification{UserID: creator.ID, Message: "hello", ProjectID: &project.ID}
	require.NoError(t, env.db.Create(&notification).Error)

	require.NoError(t, env.service.DeleteProject(project.ID))

	var projects int64
	require.NoError(t, env.db.Model(&models.Project{}).Count(&projects).Error)
	require.EqualValues(t, 0, projects)

	for _, model := range []interface{}{
		&models.Task{}, &models.Discussion{}, &models.Page{},
		&models.FollowedProject{}, &models.ProjectVisit{},
		&models.GuestAccess{}, &models.ProjectMember{},
	} {
		var count int64
		require.NoError(t, env.db.Model(model).Count(&count).Error)
		require.EqualValues(t, 0, count)
	}

	// The notification survives with its project reference cleared
	var kept models.Notification
	require.NoError(t, env.db.First(&kept, notification.ID).Error)
	require.Nil(t, kept.ProjectID)
}

func TestProjectService_ComputeProgress(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	project := createTestProject(t, env, "Launch", false, creator.ID)

	for i := 0; i < 4; i++ {
		task := models.Task{Title: "T", ProjectID: project.ID, IsCompleted: i < 2}
		require.NoError(t, env.db.Create(&task).Error)
	}

	progress, err := env.service.ComputeProgress(project.ID)
	require.NoError(t, err)
	require.InDelta(t, 50.0, progress, 0.001)

	var saved models.Project
	require.NoError(t, env.db.First(&saved, project.ID).Error)
	require.InDelta(t, 50.0, saved.Progress, 0.001)
}

func TestProjectService_ComputeProgress_NoTasksKeepsPriorValue(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	project := createTestProject(t, env, "Launch", false, creator.ID)

	require.NoError(t, env.db.Model(&models.Project{}).
		Where("id = ?", project.ID).
		Update("progress", 75.0).Error)

	progress, err := env.service.ComputeProgress(project.ID)
	require.NoError(t, err)
	require.InDelta(t, 75.0, progress, 0.001)

	var saved models.Project
	require.NoError(t, env.db.First(&saved, project.ID).Error)
	require.InDelta(t, 75.0, saved.Progress, 0.001)
}

func TestProjectService_JoinedProjectIDs(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	user := createTestUser(t, env.db, "user@example.com", models.RoleMember)

	memberProject := createTestProject(t, env, "Member", false, creator.ID)
	grantedProject := createTestProject(t, env, "Granted", true, creator.ID)
	bothProject := createTestProject(t, env, "Both", true, creator.ID)
	createTestProject(t, env, "Unrelated", false, creator.ID)

	require.NoError(t, env.service.Join(memberProject.ID, user.ID))
	require.NoError(t, env.service.Join(bothProject.ID, user.ID))
	require.NoError(t, env.service.GrantGuestAccess(grantedProject.ID, user.ID))
	require.NoError(t, env.service.GrantGuestAccess(bothProject.ID, user.ID))

	ids, err := env.service.JoinedProjectIDs(user.ID)
	require.NoError(t, err)
	require.Equal(t, []uint64{memberProject.ID, grantedProject.ID, bothProject.ID}, ids)
}

func TestProjectService_GrantGuestAccess_Deduplicates(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	guest := createTestUser(t, env.db, "guest@example.com", models.RoleGuest)
	project := createTestProject(t, env, "Launch", true, creator.ID)

	require.NoError(t, env.service.GrantGuestAccess(project.ID, guest.ID))
	require.NoError(t, env.service.GrantGuestAccess(project.ID, guest.ID))

	var count int64
	require.NoError(t, env.db.Model(&models.GuestAccess{}).
		Where("project_id = ? AND user_id = ?", project.ID, guest.ID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestProjectService_RemoveGuest(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	guest := createTestUser(t, env.db, "guest@example.com", models.RoleGuest)
	project := createTestProject(t, env, "Launch", true, creator.ID)

	require.NoError(t, env.service.GrantGuestAccess(project.ID, guest.ID))
	require.NoError(t, env.service.RemoveGuest(project.ID, guest.Email))

	var count int64
	require.NoError(t, env.db.Model(&models.GuestAccess{}).Count(&count).Error)
	require.EqualValues(t, 0, count)

	// Removing again, or removing an unknown email, is a no-op
	require.NoError(t, env.service.RemoveGuest(project.ID, guest.Email))
	require.NoError(t, env.service.RemoveGuest(project.ID, "nobody@example.com"))
}

func TestProjectService_IsMember(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	stranger := createTestUser(t, env.db, "stranger@example.com", models.RoleMember)
	project := createTestProject(t, env, "Launch", false, creator.ID)

	isMember, err := env.service.IsMember(project.ID, creator.ID)
	require.NoError(t, err)
	require.True(t, isMember)

	isMember, err = env.service.IsMember(project.ID, stranger.ID)
	require.NoError(t, err)
	require.False(t, isMember)
}

func TestGormProjectRepository_FindVisibleByID(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	guest := createTestUser(t, env.db, "guest@example.com", models.RoleGuest)
	project := createTestProject(t, env, "Secret", true, creator.ID)

	projectRepo := repository.NewProjectRepository(env.db)
	guestRepo := repository.NewGuestAccessRepository(env.db)

	found, err := projectRepo.FindVisibleByID(project.ID, creator.ID, false)
	require.NoError(t, err)
	require.Equal(t, project.ID, found.ID)

	_, err = projectRepo.FindVisibleByID(project.ID, guest.ID, true)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, env.service.GrantGuestAccess(project.ID, guest.ID))

	hasGrant, err := guestRepo.HasGrant(project.ID, guest.ID)
	require.NoError(t, err)
	require.True(t, hasGrant)

	found, err = projectRepo.FindVisibleByID(project.ID, guest.ID, true)
	require.NoError(t, err)
	require.Equal(t, project.ID, found.ID)
}

func TestInviteService_AcceptInvite(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	guest := createTestUser(t, env.db, "guest@example.com", models.RoleGuest)
	project := createTestProject(t, env, "Launch", true, creator.ID)

	require.NoError(t, env.service.InviteGuest(project.ID, guest.Email))

	var invite models.GuestInvite
	require.NoError(t, env.db.Where("project_id = ?", project.ID).First(&invite).Error)
	require.Equal(t, guest.Email, invite.Email)
	require.Nil(t, invite.AcceptedAt)

	accepted, err := env.inviteService.AcceptInvite(invite.Code, guest.ID)
	require.NoError(t, err)
	require.Equal(t, project.ID, accepted.ProjectID)

	var grants int64
	require.NoError(t, env.db.Model(&models.GuestAccess{}).
		Where("project_id = ? AND user_id = ?", project.ID, guest.ID).
		Count(&grants).Error)
	require.EqualValues(t, 1, grants)

	// Codes are single use
	_, err = env.inviteService.AcceptInvite(invite.Code, guest.ID)
	require.ErrorIs(t, err, ErrInviteAlreadyUsed)

	_, err = env.inviteService.AcceptInvite("no-such-code", guest.ID)
	require.ErrorIs(t, err, ErrInviteNotFound)
}

func TestInviteService_AcceptInvite_EmailMismatch(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	invited := createTestUser(t, env.db, "invited@example.com", models.RoleGuest)
	interloper := createTestUser(t, env.db, "interloper@example.com", models.RoleGuest)
	project := createTestProject(t, env, "Launch", true, creator.ID)

	require.NoError(t, env.service.InviteGuest(project.ID, invited.Email))

	var invite models.GuestInvite
	require.NoError(t, env.db.Where("project_id = ?", project.ID).First(&invite).Error)

	// Knowing the code is not enough: the invite is bound to the email
	_, err := env.inviteService.AcceptInvite(invite.Code, interloper.ID)
	require.ErrorIs(t, err, ErrInviteEmailMismatch)

	var grants int64
	require.NoError(t, env.db.Model(&models.GuestAccess{}).Count(&grants).Error)
	require.EqualValues(t, 0, grants)

	// The invite stays redeemable by its rightful owner
	accepted, err := env.inviteService.AcceptInvite(invite.Code, invited.ID)
	require.NoError(t, err)
	require.Equal(t, project.ID, accepted.ProjectID)
}

func TestInviteService_AcceptInvite_EmailCaseInsensitive(t *testing.T) {
	env := setupProjectTestEnv(t)

	creator := createTestUser(t, env.db, "creator@example.com", models.RoleMember)
	invited := createTestUser(t, env.db, "guest@example.com", models.RoleGuest)
	project := createTestProject(t, env, "Launch", true, creator.ID)

	require.NoError(t, env.service.InviteGuest(project.ID, "Guest@Example.COM"))

	var invite models.GuestInvite
	require.NoError(t, env.db.Where("project_id = ?", project.ID).First(&invite).Error)

	_, err := env.inviteService.AcceptInvite(invite.Code, invited.ID)
	require.NoError(t, err)
}
