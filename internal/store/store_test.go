package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yasseriouss/yasser-portfolio-new/internal/models"
)

const testOwnerOpenID = "manus:owner-123"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	s := New(gdb, testOwnerOpenID, zerolog.Nop())
	if err := s.AutoMigrate(); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return s
}

func strPtr(s string) *string { return &s }

func TestUpsertUserInsertsThenUpdatesSameRow(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpsertUser(UserUpsert{OpenID: "google:abc", Name: strPtr("Omar")}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	first, err := s.GetUserByOpenID("google:abc")
	if err != nil || first == nil {
		t.Fatalf("lookup after insert: user=%v err=%v", first, err)
	}
	if first.Role != models.RoleUser {
		t.Fatalf("expected default role user, got %q", first.Role)
	}

	if err := s.UpsertUser(UserUpsert{OpenID: "google:abc", Name: strPtr("Omar K.")}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	second, err := s.GetUserByOpenID("google:abc")
	if err != nil || second == nil {
		t.Fatalf("lookup after update: user=%v err=%v", second, err)
	}
	if second.ID != first.ID {
		t.Fatalf("upsert created a duplicate: id %d vs %d", second.ID, first.ID)
	}
	if second.Name != "Omar K." {
		t.Fatalf("name not updated, got %q", second.Name)
	}

	var count int64
	s.db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 user row, got %d", count)
	}
}

func TestUpsertUserOwnerBootstrap(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpsertUser(UserUpsert{OpenID: testOwnerOpenID}); err != nil {
		t.Fatalf("owner upsert: %v", err)
	}
	owner, _ := s.GetUserByOpenID(testOwnerOpenID)
	if owner == nil || owner.Role != models.RoleAdmin {
		t.Fatalf("owner identity not promoted to admin: %+v", owner)
	}

	// Bootstrap also applies on every subsequent login without a role.
	if err := s.UpsertUser(UserUpsert{OpenID: testOwnerOpenID}); err != nil {
		t.Fatalf("owner re-upsert: %v", err)
	}
	owner, _ = s.GetUserByOpenID(testOwnerOpenID)
	if owner.Role != models.RoleAdmin {
		t.Fatalf("owner demoted on re-login: %q", owner.Role)
	}

	// An explicit role wins over the bootstrap.
	role := models.RoleUser
	if err := s.UpsertUser(UserUpsert{OpenID: testOwnerOpenID, Role: &role}); err != nil {
		t.Fatalf("explicit role upsert: %v", err)
	}
	owner, _ = s.GetUserByOpenID(testOwnerOpenID)
	if owner.Role != models.RoleUser {
		t.Fatalf("explicit role ignored, got %q", owner.Role)
	}
}

func TestUpsertUserAlwaysStampsLastSignedIn(t *testing.T) {
	s := newTestStore(t)

	before := time.Now().Add(-time.Second)
	if err := s.UpsertUser(UserUpsert{OpenID: "google:xyz"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	u, _ := s.GetUserByOpenID("google:xyz")
	if u.LastSignedIn.Before(before) {
		t.Fatalf("lastSignedIn not defaulted to now: %v", u.LastSignedIn)
	}

	explicit := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := s.UpsertUser(UserUpsert{OpenID: "google:xyz", LastSignedIn: &explicit}); err != nil {
		t.Fatalf("upsert with explicit time: %v", err)
	}
	u, _ = s.GetUserByOpenID("google:xyz")
	if !u.LastSignedIn.Equal(explicit) {
		t.Fatalf("explicit lastSignedIn not stored: %v", u.LastSignedIn)
	}
}

func TestUpsertUserRequiresOpenID(t *testing.T) {
	s := newTestStore(t)
	if err := s.UpsertUser(UserUpsert{}); err == nil {
		t.Fatal("expected error for missing openId")
	}
}

func TestPersonalInfoSingleton(t *testing.T) {
	s := newTestStore(t)

	if info, err := s.GetPersonalInfo(); err != nil || info != nil {
		t.Fatalf("expected absent singleton, got info=%v err=%v", info, err)
	}

	for i := 0; i < 5; i++ {
		err := s.UpsertPersonalInfo(
			models.PersonalInfo{FullNameEn: "Yasser Sallam", TitleAr: "خبير"},
			map[string]any{"full_name_en": "Yasser Sallam", "title_ar": "خبير"},
		)
		if err != nil {
			t.Fatalf("upsert %d: %v", i, err)
		}
	}

	var count int64
	s.db.Model(&models.PersonalInfo{}).Count(&count)
	if count != 1 {
		t.Fatalf("singleton violated: %d rows", count)
	}

	info, err := s.GetPersonalInfo()
	if err != nil || info == nil {
		t.Fatalf("singleton lookup: info=%v err=%v", info, err)
	}
	if info.FullNameEn != "Yasser Sallam" || info.TitleAr != "خبير" {
		t.Fatalf("unexpected content: %+v", info)
	}
}

func TestPersonalInfoPartialUpdateKeepsOtherColumns(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpsertPersonalInfo(
		models.PersonalInfo{FullNameEn: "Yasser", Email: "a@b.c"},
		map[string]any{"full_name_en": "Yasser", "email": "a@b.c"},
	); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.UpsertPersonalInfo(
		models.PersonalInfo{Phone: "+20100"},
		map[string]any{"phone": "+20100"},
	); err != nil {
		t.Fatalf("partial update: %v", err)
	}

	info, _ := s.GetPersonalInfo()
	if info.FullNameEn != "Yasser" || info.Email != "a@b.c" || info.Phone != "+20100" {
		t.Fatalf("partial update touched wrong columns: %+v", info)
	}
}

func TestExperienceRoundTrip(t *testing.T) {
	s := newTestStore(t)

	start, _ := time.Parse("2006-01-02", "2024-08-01")
	e := models.Experience{
		CompanyEn:  "Larouch for Wooden Furniture",
		CompanyAr:  "لاروش للأثاث الخشبي",
		PositionEn: "CNC Production Engineer",
		StartDate:  &start,
		IsCurrent:  true,
	}
	if err := s.CreateExperience(&e); err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.ID == 0 {
		t.Fatal("create did not assign an id")
	}

	got, err := s.GetExperienceByID(e.ID)
	if err != nil || got == nil {
		t.Fatalf("get by id: exp=%v err=%v", got, err)
	}
	if got.CompanyEn != e.CompanyEn || got.CompanyAr != e.CompanyAr || got.PositionEn != e.PositionEn {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.StartDate == nil || got.StartDate.Format("2006-01-02") != "2024-08-01" {
		t.Fatalf("date not preserved at day precision: %v", got.StartDate)
	}
	if !got.IsCurrent || got.EndDate != nil {
		t.Fatalf("current flag/end date wrong: current=%v end=%v", got.IsCurrent, got.EndDate)
	}
}

func TestExperienceOrdering(t *testing.T) {
	s := newTestStore(t)

	mk := func(company string, order int, start string) {
		d, _ := time.Parse("2006-01-02", start)
		e := models.Experience{CompanyEn: company, PositionEn: "x", DisplayOrder: order, StartDate: &d}
		if err := s.CreateExperience(&e); err != nil {
			t.Fatalf("create %s: %v", company, err)
		}
	}
	mk("older-high-order", 2, "2018-01-01")
	mk("newest-low-order", 1, "2024-01-01")
	mk("older-low-order", 1, "2020-01-01")

	list, err := s.ListExperiences()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"newest-low-order", "older-low-order", "older-high-order"}
	if len(list) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(list))
	}
	for i, w := range want {
		if list[i].CompanyEn != w {
			t.Fatalf("position %d: want %s got %s", i, w, list[i].CompanyEn)
		}
	}
}

func TestUpdateAndDeleteMissingIDReturnNotFound(t *testing.T) {
	s := newTestStore(t)

	if err := s.UpdateSkill(999, map[string]any{"name_en": "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing id: want ErrNotFound, got %v", err)
	}
	if err := s.DeleteProject(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete missing id: want ErrNotFound, got %v", err)
	}
}

func TestFeaturedProjectFilter(t *testing.T) {
	s := newTestStore(t)

	a := models.Project{TitleEn: "Modern Kitchen Design", IsFeatured: true}
	b := models.Project{TitleEn: "Side Table"}
	if err := s.CreateProject(&a); err != nil {
		t.Fatalf("create a: %v", err)
	}
	if err := s.CreateProject(&b); err != nil {
		t.Fatalf("create b: %v", err)
	}

	featured, err := s.ListFeaturedProjects()
	if err != nil {
		t.Fatalf("featured: %v", err)
	}
	if len(featured) != 1 || featured[0].TitleEn != "Modern Kitchen Design" {
		t.Fatalf("featured filter wrong: %+v", featured)
	}
}

func TestReviewApprovalLifecycle(t *testing.T) {
	s := newTestStore(t)

	r := models.Review{ReviewerName: "Omar", Rating: 4, Comment: "Great precision work on my kitchen cabinets"}
	if err := s.CreateReview(&r); err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.ID == 0 {
		t.Fatal("no id assigned")
	}

	approved, _ := s.ListApprovedReviews()
	if len(approved) != 0 {
		t.Fatalf("pending review leaked into public feed: %+v", approved)
	}
	all, _ := s.ListAllReviews()
	if len(all) != 1 {
		t.Fatalf("admin feed missing pending review: %+v", all)
	}

	if err := s.SetReviewApproval(r.ID, true); err != nil {
		t.Fatalf("approve: %v", err)
	}
	approved, _ = s.ListApprovedReviews()
	if len(approved) != 1 || approved[0].ID != r.ID {
		t.Fatalf("approved review not visible: %+v", approved)
	}

	// Unapprove is the reverse transition.
	if err := s.SetReviewApproval(r.ID, false); err != nil {
		t.Fatalf("unapprove: %v", err)
	}
	approved, _ = s.ListApprovedReviews()
	if len(approved) != 0 {
		t.Fatalf("unapproved review still visible: %+v", approved)
	}

	if err := s.ReplyToReview(r.ID, "Thank you, Omar"); err != nil {
		t.Fatalf("reply: %v", err)
	}
	got, _ := s.GetReviewByID(r.ID)
	if got.AdminReply != "Thank you, Omar" || got.RepliedAt == nil {
		t.Fatalf("reply not stored: %+v", got)
	}

	if err := s.DeleteReview(r.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := s.GetReviewByID(r.ID); got != nil {
		t.Fatalf("review survived delete: %+v", got)
	}
}

func TestReviewStats(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.GetReviewStats()
	if err != nil {
		t.Fatalf("stats empty table: %v", err)
	}
	if stats.Total != 0 || stats.Approved != 0 || stats.Average != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}

	add := func(rating int, approved bool) {
		r := models.Review{ReviewerName: "Visitor", Rating: rating, Comment: "comment long enough here"}
		if err := s.CreateReview(&r); err != nil {
			t.Fatalf("create: %v", err)
		}
		if approved {
			if err := s.SetReviewApproval(r.ID, true); err != nil {
				t.Fatalf("approve: %v", err)
			}
		}
	}
	add(5, true)
	add(4, true)
	add(4, true)
	add(1, false) // pending rows never count toward the average

	stats, err = s.GetReviewStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 4 || stats.Approved != 3 {
		t.Fatalf("counts wrong: %+v", stats)
	}
	// (5+4+4)/3 = 4.333..., rounded to one decimal.
	if stats.Average != 4.3 {
		t.Fatalf("average wrong: %v", stats.Average)
	}
}

func TestUnavailableStoreDegradesReadsAndFailsWrites(t *testing.T) {
	s := New(nil, "", zerolog.Nop())

	if s.Available() {
		t.Fatal("nil-handle store reported available")
	}

	if list, err := s.ListExperiences(); err != nil || len(list) != 0 {
		t.Fatalf("list should degrade to empty: list=%v err=%v", list, err)
	}
	if info, err := s.GetPersonalInfo(); err != nil || info != nil {
		t.Fatalf("singleton should degrade to absent: %v %v", info, err)
	}
	if u, err := s.GetUserByOpenID("x"); err != nil || u != nil {
		t.Fatalf("user lookup should degrade to absent: %v %v", u, err)
	}
	if stats, err := s.GetReviewStats(); err != nil || stats.Total != 0 {
		t.Fatalf("stats should degrade to zeros: %+v %v", stats, err)
	}

	r := models.Review{ReviewerName: "Omar", Rating: 4, Comment: "long enough comment"}
	if err := s.CreateReview(&r); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("create should fail unavailable, got %v", err)
	}
	if err := s.UpsertUser(UserUpsert{OpenID: "x"}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("upsert should fail unavailable, got %v", err)
	}
	if err := s.UpsertPersonalInfo(models.PersonalInfo{}, map[string]any{"email": "a@b.c"}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("personal info upsert should fail unavailable, got %v", err)
	}
}
