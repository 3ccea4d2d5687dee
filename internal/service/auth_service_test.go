package service

import (
	"context"
	"testing"

	"dochouse/internal/model"
	"dochouse/internal/utils"

	"github.com/stretchr/testify/assert"
)

// memUserRepo is an in-memory UserRepository for service tests
type memUserRepo struct {
	seq   int
	users map[int]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int]*model.User{}}
}

func (m *memUserRepo) Create(ctx context.Context, user *model.User) error {
	m.seq++
	user.ID = m.seq
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByID(ctx context.Context, id int) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (m *memUserRepo) UpdateRole(ctx context.Context, id int, role string) (int64, error) {
	u, ok := m.users[id]
	if !ok {
		return 0, nil
	}
	u.Role = role
	return 1, nil
}

func (m *memUserRepo) Delete(ctx context.Context, id int) (int64, error) {
	if _, ok := m.users[id]; !ok {
		return 0, nil
	}
	delete(m.users, id)
	return 1, nil
}

func newTestAuthService() (AuthService, *memUserRepo, *utils.JWTUtil) {
	repo := newMemUserRepo()
	jwtUtil := utils.NewJWTUtil("test-secret", 1)
	return NewAuthService(repo, jwtUtil), repo, jwtUtil
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, _, jwtUtil := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "u1", "a@x.com", "pw1secret", "")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEqual(t, "pw1secret", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("pw1secret", user.PasswordHash))

	loggedIn, token, err := svc.Login(ctx, "a@x.com", "pw1secret")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := jwtUtil.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "u1", claims.Username)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestAuthService_LoginByUsername(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "u1", "a@x.com", "pw1secret", "")
	assert.NoError(t, err)

	// No '@' in the identifier branches to username lookup
	_, token, err := svc.Login(ctx, "u1", "pw1secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthService_LoginFailuresIndistinguishable(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "u1", "a@x.com", "pw1secret", "")
	assert.NoError(t, err)

	_, _, wrongPw := svc.Login(ctx, "a@x.com", "wrongpass")
	_, _, noUser := svc.Login(ctx, "nobody@x.com", "whatever")

	assert.ErrorIs(t, wrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPw.Error(), noUser.Error())
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "u1", "a@x.com", "pw1secret", "")
	assert.NoError(t, err)

	_, err = svc.Register(ctx, "other", "a@x.com", "pw2secret", "")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = svc.Register(ctx, "u1", "b@x.com", "pw2secret", "")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_SetRoleIdempotent(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "u1", "a@x.com", "pw1secret", "")
	assert.NoError(t, err)

	_, err = svc.SetRole(ctx, user.ID, model.RoleAdmin)
	assert.NoError(t, err)
	_, err = svc.SetRole(ctx, user.ID, model.RoleAdmin)
	assert.NoError(t, err)

	stored, _ := repo.FindByID(ctx, user.ID)
	assert.Equal(t, model.RoleAdmin, stored.Role)
}

func TestAuthService_SetRoleInvalid(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.SetRole(context.Background(), 1, "superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAuthService_SetRoleMissingUser(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.SetRole(context.Background(), 99, model.RoleAdmin)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_AuthStatus(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "u1", "a@x.com", "pw1secret", "")
	assert.NoError(t, err)

	fetched, err := svc.AuthStatus(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", fetched.Email)

	_, err = svc.AuthStatus(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_IsAdmin(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "u1", "a@x.com", "pw1secret", "")
	assert.NoError(t, err)

	isAdmin, err := svc.IsAdmin(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.False(t, isAdmin)

	_, err = svc.SetRole(ctx, user.ID, model.RoleAdmin)
	assert.NoError(t, err)

	isAdmin, err = svc.IsAdmin(ctx, "a@x.com")
	assert.NoError(t, err)
	assert.True(t, isAdmin)

	_, err = svc.IsAdmin(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_DeleteUser(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, "u1", "a@x.com", "pw1secret", "")
	assert.NoError(t, err)

	_, err = svc.DeleteUser(ctx, user.ID)
	assert.NoError(t, err)

	_, err = svc.AuthStatus(ctx, user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.DeleteUser(ctx, user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
