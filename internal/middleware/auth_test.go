package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/RiegL/ostia-visitas-report/internal/model"
	pkgauth "github.com/RiegL/ostia-visitas-report/pkg/auth"
)

type stubAuthService struct {
	mock.Mock
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	args := s.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResponse), args.Error(1)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.Called(ctx, sessionID).Error(0)
}

func (s *stubAuthService) CurrentSession(ctx context.Context, sessionID string) (*model.Session, error) {
	args := s.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (s *stubAuthService) Revalidate(ctx context.Context, sess *model.Session) (*model.Session, error) {
	args := s.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

type stubTokenService struct {
	mock.Mock
}

func (s *stubTokenService) Generate(sessionID string, minister *model.Minister) (string, error) {
	args := s.Called(sessionID, minister)
	return args.String(0), args.Error(1)
}

func (s *stubTokenService) Validate(token string) (*pkgauth.Claims, error) {
	args := s.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pkgauth.Claims), args.Error(1)
}

func claimsFor(sessionID string, role model.MinisterRole) *pkgauth.Claims {
	return &pkgauth.Claims{
		MinisterID: 1,
		Username:   "pedro",
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID: sessionID,
		},
	}
}

func serve(mw *AuthMiddleware, permission string, header string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("", mw.Authenticate())
	if permission != "" {
		group = group.Group("", mw.RequirePermission(permission))
	}
	group.GET("/probe", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateMissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(&stubAuthService{}, &stubTokenService{})
	w := serve(mw, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	mw := NewAuthMiddleware(&stubAuthService{}, &stubTokenService{})
	w := serve(mw, "", "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	tokens := &stubTokenService{}
	tokens.On("Validate", "bad").Return(nil, jwt.ErrTokenExpired)

	mw := NewAuthMiddleware(&stubAuthService{}, tokens)
	w := serve(mw, "", "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateExpiredSession(t *testing.T) {
	tokens := &stubTokenService{}
	tokens.On("Validate", "good").Return(claimsFor("sess-1", model.MinisterRoleUser), nil)

	svc := &stubAuthService{}
	svc.On("CurrentSession", mock.Anything, "sess-1").Return(nil, nil)

	mw := NewAuthMiddleware(svc, tokens)
	w := serve(mw, "", "Bearer good")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticatePasses(t *testing.T) {
	tokens := &stubTokenService{}
	tokens.On("Validate", "good").Return(claimsFor("sess-1", model.MinisterRoleUser), nil)

	svc := &stubAuthService{}
	svc.On("CurrentSession", mock.Anything, "sess-1").
		Return(&model.Session{ID: "sess-1", MinisterID: 1, Role: model.MinisterRoleUser}, nil)

	mw := NewAuthMiddleware(svc, tokens)
	w := serve(mw, "", "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermissionForbiddenForRegularMinister(t *testing.T) {
	sess := &model.Session{ID: "sess-1", MinisterID: 1, Role: model.MinisterRoleUser}

	tokens := &stubTokenService{}
	tokens.On("Validate", "good").Return(claimsFor("sess-1", model.MinisterRoleUser), nil)

	svc := &stubAuthService{}
	svc.On("CurrentSession", mock.Anything, "sess-1").Return(sess, nil)
	svc.On("Revalidate", mock.Anything, sess).Return(sess, nil)

	mw := NewAuthMiddleware(svc, tokens)
	w := serve(mw, model.PermissionManageMinisters, "Bearer good")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermissionAllowsAdmin(t *testing.T) {
	sess := &model.Session{ID: "sess-2", MinisterID: 2, Role: model.MinisterRoleAdmin}

	tokens := &stubTokenService{}
	tokens.On("Validate", "good").Return(claimsFor("sess-2", model.MinisterRoleAdmin), nil)

	svc := &stubAuthService{}
	svc.On("CurrentSession", mock.Anything, "sess-2").Return(sess, nil)
	svc.On("Revalidate", mock.Anything, sess).Return(sess, nil)

	mw := NewAuthMiddleware(svc, tokens)
	w := serve(mw, model.PermissionManageMinisters, "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermissionInvalidatedSession(t *testing.T) {
	sess := &model.Session{ID: "sess-3", MinisterID: 3, Role: model.MinisterRoleAdmin}

	tokens := &stubTokenService{}
	tokens.On("Validate", "good").Return(claimsFor("sess-3", model.MinisterRoleAdmin), nil)

	svc := &stubAuthService{}
	svc.On("CurrentSession", mock.Anything, "sess-3").Return(sess, nil)
	svc.On("Revalidate", mock.Anything, sess).Return(nil, assert.AnError)

	mw := NewAuthMiddleware(svc, tokens)
	w := serve(mw, model.PermissionManageMinisters, "Bearer good")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
