package httpadapter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, method jwt.SigningMethod, claims jwt.Claims, key any) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return tok
}

func TestVerifyToken(t *testing.T) {
	valid := jwt.RegisteredClaims{Subject: homeownerID, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute))}

	tests := []struct {
		name    string
		token   string
		secret  []byte
		wantErr bool
	}{
		{name: "valid", token: sign(t, jwt.SigningMethodHS256, valid, testSecret), secret: testSecret},
		{name: "wrong secret", token: sign(t, jwt.SigningMethodHS256, valid, []byte("x")), secret: testSecret, wantErr: true},
		{name: "HS512 rejected", token: sign(t, jwt.SigningMethodHS512, valid, testSecret), secret: testSecret, wantErr: true},
		{name: "unsigned", token: sign(t, jwt.SigningMethodNone, valid, jwt.UnsafeAllowNoneSignatureType), secret: testSecret, wantErr: true},
		{name: "expired", token: sign(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   homeownerID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}, testSecret), secret: testSecret, wantErr: true},
		{name: "no expiry", token: sign(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: homeownerID}, testSecret), secret: testSecret, wantErr: true},
		{name: "subject not a uuid", token: sign(t, jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "admin",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}, testSecret), secret: testSecret, wantErr: true},
		{name: "empty secret", token: sign(t, jwt.SigningMethodHS256, valid, testSecret), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := verifyToken(tt.token, tt.secret)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, homeownerID, sub)
		})
	}
}

func TestTokenFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := tokenFromRequest(req)
	assert.ErrorIs(t, err, errNoToken)

	req.Header.Set("Authorization", "Bearer ")
	_, err = tokenFromRequest(req)
	assert.ErrorIs(t, err, errNoToken)

	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "from-cookie"})
	tok, err := tokenFromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "from-cookie", tok)

	req.Header.Set("Authorization", "Bearer from-header")
	tok, err = tokenFromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "from-header", tok, "header wins over cookie")
}

func TestValidSlug(t *testing.T) {
	assert.True(t, validSlug("spring-checklist-2024"))
	assert.False(t, validSlug(""))
	assert.False(t, validSlug("Spring"))
	assert.False(t, validSlug("../etc"))
}
