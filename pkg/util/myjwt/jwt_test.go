package myjwt

import (
	"testing"
	"time"

	"LiveDesk/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

func init() {
	conf := config.GetConfig()
	conf.JwtConfig.Key = "unit-test-secret"
	conf.JwtConfig.Issuer = "livedesk-test"
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("agent-7", "team-1", "agent", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserId != "agent-7" || claims.TeamId != "team-1" || claims.Role != "agent" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestTokenRequiresTeamScope(t *testing.T) {
	token, err := GenerateToken("agent-7", "", "agent", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(token); err == nil {
		t.Fatal("token without team scope accepted")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	claims := CustomClaims{
		UserId: "agent-7",
		TeamId: "team-1",
		Role:   "agent",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseToken(token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestWrongKeyRejected(t *testing.T) {
	claims := CustomClaims{
		UserId: "agent-7",
		TeamId: "team-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseToken(token); err == nil {
		t.Fatal("token signed with wrong key accepted")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := ParseToken("not-a-jwt"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
