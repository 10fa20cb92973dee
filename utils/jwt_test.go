package utils

import (
	"testing"
)

func TestInitJWTRejectsEmptySecret(t *testing.T) {
	if err := InitJWT(""); err == nil {
		t.Fatal("空密钥应报错，密钥不允许有默认值")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	if err := InitJWT("test-secret"); err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	token, err := GenerateToken("user-42")
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("解析令牌失败: %v", err)
	}
	if claims.UserID != "user-42" {
		t.Errorf("user_id = %q, 期望 user-42", claims.UserID)
	}
	if claims.ID == "" {
		t.Error("令牌应携带 jti，登出名单依赖它")
	}
	if claims.ExpiresAt == nil {
		t.Error("令牌应有过期时间")
	}
}

func TestParseTokenRejectsTampered(t *testing.T) {
	if err := InitJWT("test-secret"); err != nil {
		t.Fatalf("初始化失败: %v", err)
	}

	token, err := GenerateToken("user-42")
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	if _, err := ParseToken(token + "x"); err == nil {
		t.Fatal("被篡改的令牌应解析失败")
	}
	if _, err := ParseToken("not-a-token"); err == nil {
		t.Fatal("非法令牌应解析失败")
	}
}
