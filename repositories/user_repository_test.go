package repositories

import (
	"errors"
	"testing"

	"OrganizadorGo/models"
)

func TestUserRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"缺邮箱", "", "secret123"},
		{"缺密码", "a@x.com", ""},
		{"无域名", "a@", "secret123"},
		{"无TLD", "a@x", "secret123"},
		{"无local部分", "@x.com", "secret123"},
	}
	for _, tc := range cases {
		if _, err := repo.Register(tc.email, tc.password, ""); !errors.Is(err, ErrValidation) {
			t.Errorf("%s: 应报 ErrValidation，实际: %v", tc.name, err)
		}
	}
}

func TestUserRegisterStoresOnlyHash(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.Register("a@x.com", "secret123", "Ana")
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Fatal("密码必须以哈希存储，不允许明文或空值")
	}
	if user.Name != "Ana" {
		t.Errorf("name = %q", user.Name)
	}

	// 公开视图不暴露哈希
	public := user.ToPublic()
	if public.Email != "a@x.com" || public.ID != user.ID {
		t.Errorf("公开视图字段不完整: %+v", public)
	}
}

func TestUserRegisterDuplicateEmailConflicts(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	if _, err := repo.Register("a@x.com", "secret123", ""); err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if _, err := repo.Register("a@x.com", "other456", ""); !errors.Is(err, ErrConflict) {
		t.Fatalf("重复邮箱应报 ErrConflict，实际: %v", err)
	}
}

func TestUserAuthenticate(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	registered, err := repo.Register("a@x.com", "secret123", "")
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	user, err := repo.Authenticate("a@x.com", "secret123")
	if err != nil {
		t.Fatalf("正确凭据应通过: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("返回了错误的用户: %s", user.ID)
	}

	// 密码错误和邮箱不存在必须返回同一个错误，防止账号枚举
	_, errBadPassword := repo.Authenticate("a@x.com", "wrong")
	_, errNoUser := repo.Authenticate("nobody@x.com", "secret123")
	if !errors.Is(errBadPassword, ErrUnauthorized) || !errors.Is(errNoUser, ErrUnauthorized) {
		t.Fatalf("两类失败都应是 ErrUnauthorized: %v / %v", errBadPassword, errNoUser)
	}
	if errBadPassword.Error() != errNoUser.Error() {
		t.Fatal("错误信息不应区分“邮箱不存在”和“密码错误”")
	}
}

func TestUserDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	taskRepo := NewTaskRepository(db)
	tagRepo := NewTagRepository(db)
	pomodoroRepo := NewPomodoroRepository(db)

	user, err := userRepo.Register("a@x.com", "secret123", "")
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	tag, err := tagRepo.Create(user.ID, "work")
	if err != nil {
		t.Fatalf("创建标签失败: %v", err)
	}
	if _, err := taskRepo.Create(user.ID, models.CreateTaskRequest{
		Title:  "t",
		TagIDs: []string{tag.ID},
	}); err != nil {
		t.Fatalf("创建任务失败: %v", err)
	}
	if _, err := pomodoroRepo.Record(user.ID, 25); err != nil {
		t.Fatalf("记录番茄钟失败: %v", err)
	}

	if err := userRepo.Delete(user.ID); err != nil {
		t.Fatalf("删除用户失败: %v", err)
	}

	if _, err := userRepo.FindByID(user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("用户应已删除，实际: %v", err)
	}
	tasks, _ := taskRepo.List(user.ID)
	if len(tasks) != 0 {
		t.Errorf("任务应级联删除，剩余 %d", len(tasks))
	}
	tags, _ := tagRepo.List(user.ID)
	if len(tags) != 0 {
		t.Errorf("标签应级联删除，剩余 %d", len(tags))
	}
	sessions, _ := pomodoroRepo.List(user.ID)
	if len(sessions) != 0 {
		t.Errorf("番茄钟记录应级联删除，剩余 %d", len(sessions))
	}

	var joinCount int64
	if err := db.Table("task_tags").Count(&joinCount).Error; err != nil {
		t.Fatalf("查询关联表失败: %v", err)
	}
	if joinCount != 0 {
		t.Errorf("任务标签关联应清空，剩余 %d", joinCount)
	}

	// 二次删除
	if err := userRepo.Delete(user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("二次删除应报 ErrNotFound，实际: %v", err)
	}
}
