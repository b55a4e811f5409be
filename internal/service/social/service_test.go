package social

import (
	"testing"

	"campus_hub_server/internal/dao/mysql/repository"
	"campus_hub_server/internal/model"
	"campus_hub_server/pkg/enum/friend/friend_status_enum"
	"campus_hub_server/pkg/errorx"
)

// ==================== 内存桩 ====================

type fakeUserRepo struct{}

func (f *fakeUserRepo) FindByUuid(uuid string) (*model.UserInfo, error) {
	if uuid == "U_GHOST" {
		return nil, errorx.New(errorx.CodeNotFound, "用户不存在")
	}
	return &model.UserInfo{Uuid: uuid}, nil
}
func (f *fakeUserRepo) FindByTelephone(telephone string) (*model.UserInfo, error) {
	return nil, errorx.New(errorx.CodeNotFound, "用户不存在")
}
func (f *fakeUserRepo) FindByUuids(uuids []string) ([]model.UserInfo, error) {
	out := make([]model.UserInfo, 0, len(uuids))
	for _, uuid := range uuids {
		out = append(out, model.UserInfo{Uuid: uuid})
	}
	return out, nil
}
func (f *fakeUserRepo) Create(user *model.UserInfo) error         { return nil }
func (f *fakeUserRepo) UpdateUserInfo(user *model.UserInfo) error { return nil }
func (f *fakeUserRepo) SearchByKeyword(keyword string, page, pageSize int) ([]model.UserInfo, int64, error) {
	return nil, 0, nil
}

type fakeFollowRepo struct {
	follows map[string]bool // follower+"/"+followee
}

func followKey(followerUuid, followeeUuid string) string { return followerUuid + "/" + followeeUuid }

func (f *fakeFollowRepo) Find(followerUuid, followeeUuid string) (*model.Follow, error) {
	if !f.follows[followKey(followerUuid, followeeUuid)] {
		return nil, errorx.New(errorx.CodeNotFound, "关注记录不存在")
	}
	return &model.Follow{FollowerUuid: followerUuid, FolloweeUuid: followeeUuid}, nil
}
func (f *fakeFollowRepo) Create(follow *model.Follow) error {
	f.follows[followKey(follow.FollowerUuid, follow.FolloweeUuid)] = true
	return nil
}
func (f *fakeFollowRepo) Delete(followerUuid, followeeUuid string) error {
	delete(f.follows, followKey(followerUuid, followeeUuid))
	return nil
}
func (f *fakeFollowRepo) FollowersOf(userUuid string, page, pageSize int) ([]model.Follow, int64, error) {
	return nil, 0, nil
}
func (f *fakeFollowRepo) FollowingOf(userUuid string, page, pageSize int) ([]model.Follow, int64, error) {
	return nil, 0, nil
}

type fakeFriendshipRepo struct {
	nextID      uint
	friendships map[uint]*model.Friendship
}

func newFakeFriendshipRepo() *fakeFriendshipRepo {
	return &fakeFriendshipRepo{nextID: 1, friendships: make(map[uint]*model.Friendship)}
}

func (f *fakeFriendshipRepo) FindBetween(userA, userB string) (*model.Friendship, error) {
	for _, fs := range f.friendships {
		if (fs.RequesterUuid == userA && fs.AddresseeUuid == userB) ||
			(fs.RequesterUuid == userB && fs.AddresseeUuid == userA) {
			return fs, nil
		}
	}
	return nil, errorx.New(errorx.CodeNotFound, "好友记录不存在")
}
func (f *fakeFriendshipRepo) Create(friendship *model.Friendship) error {
	friendship.ID = f.nextID
	f.nextID++
	f.friendships[friendship.ID] = friendship
	return nil
}
func (f *fakeFriendshipRepo) UpdateStatus(id uint, status int8) error {
	f.friendships[id].Status = status
	return nil
}
func (f *fakeFriendshipRepo) Delete(id uint) error {
	delete(f.friendships, id)
	return nil
}
func (f *fakeFriendshipRepo) FriendsOf(userUuid string, page, pageSize int) ([]model.Friendship, int64, error) {
	var out []model.Friendship
	for _, fs := range f.friendships {
		if fs.Status == friend_status_enum.ACCEPTED &&
			(fs.RequesterUuid == userUuid || fs.AddresseeUuid == userUuid) {
			out = append(out, *fs)
		}
	}
	return out, int64(len(out)), nil
}
func (f *fakeFriendshipRepo) PendingFor(userUuid string) ([]model.Friendship, error) {
	var out []model.Friendship
	for _, fs := range f.friendships {
		if fs.Status == friend_status_enum.PENDING && fs.AddresseeUuid == userUuid {
			out = append(out, *fs)
		}
	}
	return out, nil
}

// ==================== 测试脚手架 ====================

func newService() (*socialService, *fakeFollowRepo, *fakeFriendshipRepo) {
	follows := &fakeFollowRepo{follows: make(map[string]bool)}
	friendships := newFakeFriendshipRepo()
	repos := repository.NewStubRepositories(func(r *repository.Repositories) {
		r.User = &fakeUserRepo{}
		r.Follow = follows
		r.Friendship = friendships
	})
	return NewSocialService(repos, nil), follows, friendships
}

// ==================== 关注 ====================

func TestFollowUnfollow(t *testing.T) {
	svc, follows, _ := newService()

	if err := svc.Follow("U_1", "U_2"); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if !follows.follows["U_1/U_2"] {
		t.Fatalf("follow record not created")
	}
	if err := svc.Follow("U_1", "U_2"); !errorx.IsConflict(err) {
		t.Fatalf("double follow err=%v, want conflict", err)
	}
	if err := svc.Unfollow("U_1", "U_2"); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	if err := svc.Unfollow("U_1", "U_2"); !errorx.IsConflict(err) {
		t.Fatalf("unfollow twice err=%v, want conflict", err)
	}
}

func TestFollowSelfRejected(t *testing.T) {
	svc, _, _ := newService()
	err := svc.Follow("U_1", "U_1")
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("self follow err=%v, want invalid param", err)
	}
}

func TestFollowUnknownTarget(t *testing.T) {
	svc, _, _ := newService()
	if err := svc.Follow("U_1", "U_GHOST"); !errorx.IsNotFound(err) {
		t.Fatalf("follow unknown target err=%v, want not found", err)
	}
}

// ==================== 好友 ====================

func TestFriendLifecycle(t *testing.T) {
	svc, _, _ := newService()

	if err := svc.ApplyFriend("U_1", "U_2"); err != nil {
		t.Fatalf("apply friend: %v", err)
	}
	// 申请期间不是好友
	if ok, _ := svc.AreFriends("U_1", "U_2"); ok {
		t.Fatalf("pending request counted as friendship")
	}
	// 任一方向重复申请均冲突
	if err := svc.ApplyFriend("U_2", "U_1"); !errorx.IsConflict(err) {
		t.Fatalf("reverse apply err=%v, want conflict", err)
	}

	if err := svc.AcceptFriend("U_2", "U_1"); err != nil {
		t.Fatalf("accept friend: %v", err)
	}
	if ok, _ := svc.AreFriends("U_2", "U_1"); !ok {
		t.Fatalf("accepted friendship not visible both ways")
	}
	if err := svc.ApplyFriend("U_1", "U_2"); !errorx.IsConflict(err) {
		t.Fatalf("apply to existing friend err=%v, want conflict", err)
	}

	if err := svc.DeleteFriend("U_1", "U_2"); err != nil {
		t.Fatalf("delete friend: %v", err)
	}
	if ok, _ := svc.AreFriends("U_1", "U_2"); ok {
		t.Fatalf("friendship survived delete")
	}
}

func TestAcceptFriendOnlyAddressee(t *testing.T) {
	svc, _, _ := newService()
	if err := svc.ApplyFriend("U_1", "U_2"); err != nil {
		t.Fatalf("apply friend: %v", err)
	}
	// 发起方不能替对方确认
	if err := svc.AcceptFriend("U_1", "U_2"); !errorx.IsConflict(err) {
		t.Fatalf("requester accept err=%v, want conflict", err)
	}
}

func TestRejectFriendAllowsReapply(t *testing.T) {
	svc, _, _ := newService()
	if err := svc.ApplyFriend("U_1", "U_2"); err != nil {
		t.Fatalf("apply friend: %v", err)
	}
	if err := svc.RejectFriend("U_2", "U_1"); err != nil {
		t.Fatalf("reject friend: %v", err)
	}
	if err := svc.ApplyFriend("U_1", "U_2"); err != nil {
		t.Fatalf("reapply after reject: %v", err)
	}
}

func TestGetFriendRequestList(t *testing.T) {
	svc, _, _ := newService()
	if err := svc.ApplyFriend("U_1", "U_ME"); err != nil {
		t.Fatalf("apply friend: %v", err)
	}
	if err := svc.ApplyFriend("U_2", "U_ME"); err != nil {
		t.Fatalf("apply friend: %v", err)
	}

	rsp, err := svc.GetFriendRequestList("U_ME")
	if err != nil {
		t.Fatalf("get request list: %v", err)
	}
	if len(rsp.Requests) != 2 {
		t.Fatalf("requests=%d, want 2", len(rsp.Requests))
	}
}
