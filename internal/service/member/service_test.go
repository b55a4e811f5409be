package member

import (
	"testing"

	"campus_hub_server/internal/dao/mysql/repository"
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/model"
	"campus_hub_server/pkg/enum/group/group_privacy_enum"
	"campus_hub_server/pkg/enum/group/group_role_enum"
	"campus_hub_server/pkg/enum/group/member_status_enum"
	"campus_hub_server/pkg/enum/invite/invite_result_enum"
	"campus_hub_server/pkg/errorx"
)

// ==================== 内存桩 ====================

type fakeGroupRepo struct {
	groups map[string]*model.GroupInfo
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{groups: make(map[string]*model.GroupInfo)}
}

func (f *fakeGroupRepo) FindByUuid(uuid string) (*model.GroupInfo, error) {
	g, ok := f.groups[uuid]
	if !ok {
		return nil, errorx.New(errorx.CodeNotFound, "群组不存在")
	}
	return g, nil
}
func (f *fakeGroupRepo) FindBySlug(institutionUuid, slug string) (*model.GroupInfo, error) {
	return nil, errorx.New(errorx.CodeNotFound, "群组不存在")
}
func (f *fakeGroupRepo) FindByOwnerId(ownerId string) ([]model.GroupInfo, error) { return nil, nil }
func (f *fakeGroupRepo) GetGroupList(institutionUuid string, page, pageSize int) ([]model.GroupInfo, int64, error) {
	return nil, 0, nil
}
func (f *fakeGroupRepo) Create(group *model.GroupInfo) error {
	f.groups[group.Uuid] = group
	return nil
}
func (f *fakeGroupRepo) Update(group *model.GroupInfo) error {
	f.groups[group.Uuid] = group
	return nil
}
func (f *fakeGroupRepo) IncrementMemberCount(uuid string) error {
	f.groups[uuid].MembersCount++
	return nil
}
func (f *fakeGroupRepo) DecrementMemberCount(uuid string) error {
	f.groups[uuid].MembersCount--
	return nil
}
func (f *fakeGroupRepo) IncrementPostCount(uuid string) error {
	f.groups[uuid].PostsCount++
	return nil
}
func (f *fakeGroupRepo) DecrementPostCount(uuid string) error {
	f.groups[uuid].PostsCount--
	return nil
}
func (f *fakeGroupRepo) SoftDelete(uuid string) error {
	delete(f.groups, uuid)
	return nil
}
func (f *fakeGroupRepo) SearchByKeyword(keyword string, page, pageSize int) ([]model.GroupInfo, int64, error) {
	return nil, 0, nil
}

type fakeMemberRepo struct {
	members map[string]*model.GroupMember
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[string]*model.GroupMember)}
}

func memberKey(groupUuid, userUuid string) string { return groupUuid + "/" + userUuid }

func (f *fakeMemberRepo) put(m *model.GroupMember) {
	f.members[memberKey(m.GroupUuid, m.UserUuid)] = m
}

func (f *fakeMemberRepo) FindByGroupAndUser(groupUuid, userUuid string) (*model.GroupMember, error) {
	m, ok := f.members[memberKey(groupUuid, userUuid)]
	if !ok {
		return nil, errorx.New(errorx.CodeNotFound, "成员记录不存在")
	}
	return m, nil
}
func (f *fakeMemberRepo) FindByGroupAndStatus(groupUuid string, status int8, page, pageSize int) ([]model.GroupMember, int64, error) {
	var out []model.GroupMember
	for _, m := range f.members {
		if m.GroupUuid == groupUuid && m.Status == status {
			out = append(out, *m)
		}
	}
	return out, int64(len(out)), nil
}
func (f *fakeMemberRepo) FindJoinedByUser(userUuid string) ([]model.GroupMember, error) {
	var out []model.GroupMember
	for _, m := range f.members {
		if m.UserUuid == userUuid && m.Status == member_status_enum.JOINED {
			out = append(out, *m)
		}
	}
	return out, nil
}
func (f *fakeMemberRepo) Create(member *model.GroupMember) error {
	key := memberKey(member.GroupUuid, member.UserUuid)
	if _, ok := f.members[key]; ok {
		return errorx.New(errorx.CodeConflict, "成员记录已存在")
	}
	f.members[key] = member
	return nil
}
func (f *fakeMemberRepo) UpdateRole(groupUuid, userUuid string, role int8) error {
	m, err := f.FindByGroupAndUser(groupUuid, userUuid)
	if err != nil {
		return err
	}
	m.Role = role
	return nil
}
func (f *fakeMemberRepo) UpdateStatus(groupUuid, userUuid string, status int8) error {
	m, err := f.FindByGroupAndUser(groupUuid, userUuid)
	if err != nil {
		return err
	}
	m.Status = status
	return nil
}
func (f *fakeMemberRepo) Delete(groupUuid, userUuid string) error {
	delete(f.members, memberKey(groupUuid, userUuid))
	return nil
}
func (f *fakeMemberRepo) SoftDeleteByGroupUuid(groupUuid string) error {
	for key, m := range f.members {
		if m.GroupUuid == groupUuid {
			delete(f.members, key)
		}
	}
	return nil
}
func (f *fakeMemberRepo) FindMembersWithUserInfo(groupUuid string, page, pageSize int) ([]repository.GroupMemberWithUserInfo, int64, error) {
	var out []repository.GroupMemberWithUserInfo
	for _, m := range f.members {
		if m.GroupUuid == groupUuid && m.Status == member_status_enum.JOINED {
			out = append(out, repository.GroupMemberWithUserInfo{UserId: m.UserUuid, Role: m.Role})
		}
	}
	return out, int64(len(out)), nil
}

type fakeUserRepo struct {
	users map[string]*model.UserInfo
}

func (f *fakeUserRepo) FindByUuid(uuid string) (*model.UserInfo, error) {
	u, ok := f.users[uuid]
	if !ok {
		return nil, errorx.New(errorx.CodeNotFound, "用户不存在")
	}
	return u, nil
}
func (f *fakeUserRepo) FindByTelephone(telephone string) (*model.UserInfo, error) {
	return nil, errorx.New(errorx.CodeNotFound, "用户不存在")
}
func (f *fakeUserRepo) FindByUuids(uuids []string) ([]model.UserInfo, error) {
	var out []model.UserInfo
	for _, uuid := range uuids {
		if u, ok := f.users[uuid]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}
func (f *fakeUserRepo) Create(user *model.UserInfo) error         { return nil }
func (f *fakeUserRepo) UpdateUserInfo(user *model.UserInfo) error { return nil }
func (f *fakeUserRepo) SearchByKeyword(keyword string, page, pageSize int) ([]model.UserInfo, int64, error) {
	return nil, 0, nil
}

// ==================== 测试脚手架 ====================

type fixture struct {
	svc     *memberService
	groups  *fakeGroupRepo
	members *fakeMemberRepo
}

// newFixture 构造含一个测试群组的成员服务
// 群组 G_1 由 U_OWNER 创建，初始成员数 1
func newFixture(t *testing.T, privacy int8) *fixture {
	t.Helper()
	groups := newFakeGroupRepo()
	members := newFakeMemberRepo()
	groups.groups["G_1"] = &model.GroupInfo{
		Uuid:         "G_1",
		Name:         "算法讨论组",
		OwnerId:      "U_OWNER",
		Privacy:      privacy,
		MembersCount: 1,
	}
	members.put(&model.GroupMember{
		GroupUuid: "G_1", UserUuid: "U_OWNER",
		Role: group_role_enum.OWNER, Status: member_status_enum.JOINED,
	})

	repos := repository.NewStubRepositories(func(r *repository.Repositories) {
		r.Group = groups
		r.GroupMember = members
		r.User = &fakeUserRepo{users: map[string]*model.UserInfo{}}
	})
	return &fixture{
		svc:     NewMemberService(repos, nil, nil),
		groups:  groups,
		members: members,
	}
}

// seedMember 植入一条指定角色和状态的成员记录，JOINED 状态同步计数
func (f *fixture) seedMember(userUuid string, role, status int8) {
	f.members.put(&model.GroupMember{
		GroupUuid: "G_1", UserUuid: userUuid, Role: role, Status: status,
	})
	if status == member_status_enum.JOINED {
		f.groups.groups["G_1"].MembersCount++
	}
}

func (f *fixture) mustFind(t *testing.T, userUuid string) *model.GroupMember {
	t.Helper()
	m, err := f.members.FindByGroupAndUser("G_1", userUuid)
	if err != nil {
		t.Fatalf("member %s not found: %v", userUuid, err)
	}
	return m
}

func (f *fixture) memberCount() int {
	return f.groups.groups["G_1"].MembersCount
}

// ==================== 加入 ====================

func TestJoinGroupPublic(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)

	if err := f.svc.JoinGroup("U_1", "G_1"); err != nil {
		t.Fatalf("join public group: %v", err)
	}
	m := f.mustFind(t, "U_1")
	if m.Status != member_status_enum.JOINED || m.Role != group_role_enum.MEMBER {
		t.Fatalf("status=%d role=%d, want JOINED MEMBER", m.Status, m.Role)
	}
	if f.memberCount() != 2 {
		t.Fatalf("members_count=%d, want 2", f.memberCount())
	}
}

func TestJoinGroupPrivatePending(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PRIVATE)

	if err := f.svc.JoinGroup("U_1", "G_1"); err != nil {
		t.Fatalf("join private group: %v", err)
	}
	m := f.mustFind(t, "U_1")
	if m.Status != member_status_enum.PENDING {
		t.Fatalf("status=%d, want PENDING", m.Status)
	}
	// 待审核不动计数
	if f.memberCount() != 1 {
		t.Fatalf("members_count=%d, want 1", f.memberCount())
	}
}

func TestJoinGroupClosedForbidden(t *testing.T) {
	f := newFixture(t, group_privacy_enum.CLOSED)

	err := f.svc.JoinGroup("U_1", "G_1")
	if !errorx.IsForbidden(err) {
		t.Fatalf("join closed group err=%v, want forbidden", err)
	}
}

func TestJoinGroupBannedForbidden(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.BANNED)

	err := f.svc.JoinGroup("U_1", "G_1")
	if !errorx.IsForbidden(err) {
		t.Fatalf("banned user join err=%v, want forbidden", err)
	}
}

func TestJoinWhileInvitedBecomesMember(t *testing.T) {
	f := newFixture(t, group_privacy_enum.CLOSED)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.INVITED)

	// 受邀用户主动加入等同于接受邀请
	if err := f.svc.JoinGroup("U_1", "G_1"); err != nil {
		t.Fatalf("join while invited: %v", err)
	}
	if m := f.mustFind(t, "U_1"); m.Status != member_status_enum.JOINED {
		t.Fatalf("status=%d, want JOINED", m.Status)
	}
	if f.memberCount() != 2 {
		t.Fatalf("members_count=%d, want 2", f.memberCount())
	}
}

func TestJoinWhilePendingConflict(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PRIVATE)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.PENDING)

	err := f.svc.JoinGroup("U_1", "G_1")
	if !errorx.IsConflict(err) {
		t.Fatalf("join while pending err=%v, want conflict", err)
	}
}

func TestJoinGroupTwiceConflict(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.JOINED)

	err := f.svc.JoinGroup("U_1", "G_1")
	if !errorx.IsConflict(err) {
		t.Fatalf("duplicate join err=%v, want conflict", err)
	}
	if f.memberCount() != 2 {
		t.Fatalf("members_count=%d, want unchanged 2", f.memberCount())
	}
}

// ==================== 审核 ====================

func TestAcceptMember(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PRIVATE)
	f.seedMember("U_ADMIN", group_role_enum.ADMIN, member_status_enum.JOINED)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.PENDING)

	if err := f.svc.AcceptMember("U_ADMIN", "G_1", "U_1"); err != nil {
		t.Fatalf("accept member: %v", err)
	}
	if m := f.mustFind(t, "U_1"); m.Status != member_status_enum.JOINED {
		t.Fatalf("status=%d, want JOINED", m.Status)
	}
	if f.memberCount() != 3 {
		t.Fatalf("members_count=%d, want 3", f.memberCount())
	}
}

func TestAcceptMemberRequiresAdmin(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PRIVATE)
	f.seedMember("U_PLAIN", group_role_enum.MEMBER, member_status_enum.JOINED)
	f.seedMember("U_MOD", group_role_enum.MODERATOR, member_status_enum.JOINED)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.PENDING)

	if err := f.svc.AcceptMember("U_PLAIN", "G_1", "U_1"); !errorx.IsForbidden(err) {
		t.Fatalf("plain member accept err=%v, want forbidden", err)
	}
	// 协管员也无权审核入群申请
	if err := f.svc.AcceptMember("U_MOD", "G_1", "U_1"); !errorx.IsForbidden(err) {
		t.Fatalf("moderator accept err=%v, want forbidden", err)
	}
	if err := f.svc.RejectMember("U_MOD", "G_1", "U_1"); !errorx.IsForbidden(err) {
		t.Fatalf("moderator reject err=%v, want forbidden", err)
	}
}

func TestRejectMemberAllowsReapply(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PRIVATE)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.PENDING)

	if err := f.svc.RejectMember("U_OWNER", "G_1", "U_1"); err != nil {
		t.Fatalf("reject member: %v", err)
	}
	// 记录已删除，可再次申请
	if err := f.svc.JoinGroup("U_1", "G_1"); err != nil {
		t.Fatalf("reapply after reject: %v", err)
	}
}

// ==================== 邀请 ====================

func TestInviteMembersResultMarkers(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_BANNED", group_role_enum.MEMBER, member_status_enum.BANNED)
	f.seedMember("U_IN", group_role_enum.MEMBER, member_status_enum.JOINED)

	rsp, err := f.svc.InviteMembers("U_OWNER", request.InviteMembersRequest{
		GroupUuid: "G_1",
		UserUuids: []string{"U_BANNED", "U_IN", "U_NEW"},
	})
	if err != nil {
		t.Fatalf("invite members: %v", err)
	}
	want := map[string]string{
		"U_BANNED": invite_result_enum.BANNED,
		"U_IN":     invite_result_enum.ALREADY_ASSOCIATED,
		"U_NEW":    invite_result_enum.INVITED,
	}
	for _, item := range rsp.Results {
		if item.Result != want[item.UserUuid] {
			t.Fatalf("%s result=%s, want %s", item.UserUuid, item.Result, want[item.UserUuid])
		}
	}
	if m := f.mustFind(t, "U_NEW"); m.Status != member_status_enum.INVITED || m.InvitedBy != "U_OWNER" {
		t.Fatalf("invited record status=%d invitedBy=%s", m.Status, m.InvitedBy)
	}
}

func TestInviteToClosedGroupNeedsModerator(t *testing.T) {
	f := newFixture(t, group_privacy_enum.CLOSED)
	f.seedMember("U_PLAIN", group_role_enum.MEMBER, member_status_enum.JOINED)

	_, err := f.svc.InviteMembers("U_PLAIN", request.InviteMembersRequest{
		GroupUuid: "G_1",
		UserUuids: []string{"U_NEW"},
	})
	if !errorx.IsForbidden(err) {
		t.Fatalf("plain member invite to closed group err=%v, want forbidden", err)
	}
}

func TestAcceptInvite(t *testing.T) {
	f := newFixture(t, group_privacy_enum.CLOSED)
	f.members.put(&model.GroupMember{
		GroupUuid: "G_1", UserUuid: "U_1",
		Role: group_role_enum.MEMBER, Status: member_status_enum.INVITED, InvitedBy: "U_OWNER",
	})

	if err := f.svc.AcceptInvite("U_1", "G_1"); err != nil {
		t.Fatalf("accept invite: %v", err)
	}
	if m := f.mustFind(t, "U_1"); m.Status != member_status_enum.JOINED {
		t.Fatalf("status=%d, want JOINED", m.Status)
	}
	if f.memberCount() != 2 {
		t.Fatalf("members_count=%d, want 2", f.memberCount())
	}
}

func TestRejectInviteWithoutInviteConflict(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.JOINED)

	err := f.svc.RejectInvite("U_1", "G_1")
	if !errorx.IsConflict(err) {
		t.Fatalf("reject without invite err=%v, want conflict", err)
	}
}

// ==================== 退出与移除 ====================

func TestLeaveGroup(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.JOINED)

	if err := f.svc.LeaveGroup("U_1", "G_1"); err != nil {
		t.Fatalf("leave group: %v", err)
	}
	if _, err := f.members.FindByGroupAndUser("G_1", "U_1"); !errorx.IsNotFound(err) {
		t.Fatalf("member record still present after leave")
	}
	if f.memberCount() != 1 {
		t.Fatalf("members_count=%d, want 1", f.memberCount())
	}
}

func TestOwnerCannotLeave(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)

	err := f.svc.LeaveGroup("U_OWNER", "G_1")
	if !errorx.IsForbidden(err) {
		t.Fatalf("owner leave err=%v, want forbidden", err)
	}
}

func TestRemoveMember(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_ADMIN", group_role_enum.ADMIN, member_status_enum.JOINED)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.JOINED)

	if err := f.svc.RemoveMember("U_ADMIN", "G_1", "U_1"); err != nil {
		t.Fatalf("remove member: %v", err)
	}
	if f.memberCount() != 2 {
		t.Fatalf("members_count=%d, want 2", f.memberCount())
	}
}

func TestRemoveMemberRequiresAdmin(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_MOD", group_role_enum.MODERATOR, member_status_enum.JOINED)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.JOINED)

	err := f.svc.RemoveMember("U_MOD", "G_1", "U_1")
	if !errorx.IsForbidden(err) {
		t.Fatalf("moderator remove err=%v, want forbidden", err)
	}
}

func TestRemoveMemberEqualRankForbidden(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_ADMIN1", group_role_enum.ADMIN, member_status_enum.JOINED)
	f.seedMember("U_ADMIN2", group_role_enum.ADMIN, member_status_enum.JOINED)

	// 管理员不能移除另一名管理员，只有群主可以
	err := f.svc.RemoveMember("U_ADMIN1", "G_1", "U_ADMIN2")
	if !errorx.IsForbidden(err) {
		t.Fatalf("remove equal rank err=%v, want forbidden", err)
	}
	if err := f.svc.RemoveMember("U_OWNER", "G_1", "U_ADMIN2"); err != nil {
		t.Fatalf("owner remove admin: %v", err)
	}
}

// ==================== 角色管理 ====================

func TestChangeRole(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.JOINED)

	err := f.svc.ChangeRole("U_OWNER", request.ChangeRoleRequest{
		GroupUuid: "G_1", UserUuid: "U_1", Role: group_role_enum.MODERATOR,
	})
	if err != nil {
		t.Fatalf("change role: %v", err)
	}
	if m := f.mustFind(t, "U_1"); m.Role != group_role_enum.MODERATOR {
		t.Fatalf("role=%d, want MODERATOR", m.Role)
	}
}

func TestChangeRoleOwnerOnly(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_ADMIN", group_role_enum.ADMIN, member_status_enum.JOINED)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.JOINED)

	// 角色变更是群主专属权限，管理员也不行
	err := f.svc.ChangeRole("U_ADMIN", request.ChangeRoleRequest{
		GroupUuid: "G_1", UserUuid: "U_1", Role: group_role_enum.MODERATOR,
	})
	if !errorx.IsForbidden(err) {
		t.Fatalf("admin change role err=%v, want forbidden", err)
	}
}

func TestChangeRoleToOwnerRejected(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.JOINED)

	err := f.svc.ChangeRole("U_OWNER", request.ChangeRoleRequest{
		GroupUuid: "G_1", UserUuid: "U_1", Role: group_role_enum.OWNER,
	})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("grant owner via changeRole err=%v, want invalid param", err)
	}
}

func TestChangeRoleOneStepOnly(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.JOINED)
	f.seedMember("U_ADMIN", group_role_enum.ADMIN, member_status_enum.JOINED)

	// 普通成员不能一步提为管理员，须先经过协管员
	err := f.svc.ChangeRole("U_OWNER", request.ChangeRoleRequest{
		GroupUuid: "G_1", UserUuid: "U_1", Role: group_role_enum.ADMIN,
	})
	if !errorx.IsConflict(err) {
		t.Fatalf("member to admin err=%v, want conflict", err)
	}
	// 管理员同样不能一步降为普通成员
	err = f.svc.ChangeRole("U_OWNER", request.ChangeRoleRequest{
		GroupUuid: "G_1", UserUuid: "U_ADMIN", Role: group_role_enum.MEMBER,
	})
	if !errorx.IsConflict(err) {
		t.Fatalf("admin to member err=%v, want conflict", err)
	}
	// 相邻一级的升降正常放行
	if err := f.svc.ChangeRole("U_OWNER", request.ChangeRoleRequest{
		GroupUuid: "G_1", UserUuid: "U_ADMIN", Role: group_role_enum.MODERATOR,
	}); err != nil {
		t.Fatalf("admin to moderator: %v", err)
	}
	if err := f.svc.ChangeRole("U_OWNER", request.ChangeRoleRequest{
		GroupUuid: "G_1", UserUuid: "U_ADMIN", Role: group_role_enum.ADMIN,
	}); err != nil {
		t.Fatalf("moderator back to admin: %v", err)
	}
}

func TestChangeRoleSameRoleConflict(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_1", group_role_enum.MODERATOR, member_status_enum.JOINED)

	err := f.svc.ChangeRole("U_OWNER", request.ChangeRoleRequest{
		GroupUuid: "G_1", UserUuid: "U_1", Role: group_role_enum.MODERATOR,
	})
	if !errorx.IsConflict(err) {
		t.Fatalf("same role err=%v, want conflict", err)
	}
}

// ==================== 转让群主 ====================

func TestTransferOwnership(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_ADMIN", group_role_enum.ADMIN, member_status_enum.JOINED)

	if err := f.svc.TransferOwnership("U_OWNER", "G_1", "U_ADMIN"); err != nil {
		t.Fatalf("transfer ownership: %v", err)
	}
	if m := f.mustFind(t, "U_ADMIN"); m.Role != group_role_enum.OWNER {
		t.Fatalf("target role=%d, want OWNER", m.Role)
	}
	if m := f.mustFind(t, "U_OWNER"); m.Role != group_role_enum.ADMIN {
		t.Fatalf("old owner role=%d, want ADMIN", m.Role)
	}
	if f.groups.groups["G_1"].OwnerId != "U_ADMIN" {
		t.Fatalf("group OwnerId=%s, want U_ADMIN", f.groups.groups["G_1"].OwnerId)
	}
}

func TestTransferOwnershipTargetMustBeAdmin(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_MOD", group_role_enum.MODERATOR, member_status_enum.JOINED)

	err := f.svc.TransferOwnership("U_OWNER", "G_1", "U_MOD")
	if !errorx.IsConflict(err) {
		t.Fatalf("transfer to moderator err=%v, want conflict", err)
	}
}

func TestTransferOwnershipOnlyOwner(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_ADMIN1", group_role_enum.ADMIN, member_status_enum.JOINED)
	f.seedMember("U_ADMIN2", group_role_enum.ADMIN, member_status_enum.JOINED)

	err := f.svc.TransferOwnership("U_ADMIN1", "G_1", "U_ADMIN2")
	if !errorx.IsForbidden(err) {
		t.Fatalf("non-owner transfer err=%v, want forbidden", err)
	}
}

// ==================== 封禁 ====================

func TestBanJoinedMemberDecrementsCount(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_MOD", group_role_enum.MODERATOR, member_status_enum.JOINED)

	if err := f.svc.BanMember("U_OWNER", "G_1", "U_MOD"); err != nil {
		t.Fatalf("ban member: %v", err)
	}
	m := f.mustFind(t, "U_MOD")
	if m.Status != member_status_enum.BANNED || m.Role != group_role_enum.MEMBER {
		t.Fatalf("status=%d role=%d, want BANNED MEMBER", m.Status, m.Role)
	}
	if f.memberCount() != 1 {
		t.Fatalf("members_count=%d, want 1", f.memberCount())
	}
}

func TestBanByModerator(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_MOD", group_role_enum.MODERATOR, member_status_enum.JOINED)
	f.seedMember("U_MOD2", group_role_enum.MODERATOR, member_status_enum.JOINED)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.JOINED)

	// 协管员可以封禁普通成员
	if err := f.svc.BanMember("U_MOD", "G_1", "U_1"); err != nil {
		t.Fatalf("moderator ban member: %v", err)
	}
	if m := f.mustFind(t, "U_1"); m.Status != member_status_enum.BANNED {
		t.Fatalf("status=%d, want BANNED", m.Status)
	}
	// 但不能封禁同级
	if err := f.svc.BanMember("U_MOD", "G_1", "U_MOD2"); !errorx.IsForbidden(err) {
		t.Fatalf("moderator ban moderator err=%v, want forbidden", err)
	}
}

func TestBanPendingMemberKeepsCount(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PRIVATE)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.PENDING)

	if err := f.svc.BanMember("U_OWNER", "G_1", "U_1"); err != nil {
		t.Fatalf("ban pending member: %v", err)
	}
	if f.memberCount() != 1 {
		t.Fatalf("members_count=%d, want unchanged 1", f.memberCount())
	}
}

func TestBanOwnerForbidden(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_ADMIN", group_role_enum.ADMIN, member_status_enum.JOINED)

	err := f.svc.BanMember("U_ADMIN", "G_1", "U_OWNER")
	if !errorx.IsForbidden(err) {
		t.Fatalf("ban owner err=%v, want forbidden", err)
	}
}

func TestUnbanAllowsReapply(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.BANNED)

	if err := f.svc.UnbanMember("U_OWNER", "G_1", "U_1"); err != nil {
		t.Fatalf("unban member: %v", err)
	}
	// 解禁后不自动恢复身份，重新申请走正常流程
	if err := f.svc.JoinGroup("U_1", "G_1"); err != nil {
		t.Fatalf("rejoin after unban: %v", err)
	}
	if m := f.mustFind(t, "U_1"); m.Status != member_status_enum.JOINED {
		t.Fatalf("status=%d, want JOINED", m.Status)
	}
}

func TestUnbanNotBannedConflict(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PUBLIC)
	f.seedMember("U_1", group_role_enum.MEMBER, member_status_enum.JOINED)

	err := f.svc.UnbanMember("U_OWNER", "G_1", "U_1")
	if !errorx.IsConflict(err) {
		t.Fatalf("unban joined member err=%v, want conflict", err)
	}
}

// ==================== 列表 ====================

func TestGetJoinRequestListRequiresModerator(t *testing.T) {
	f := newFixture(t, group_privacy_enum.PRIVATE)
	f.seedMember("U_PLAIN", group_role_enum.MEMBER, member_status_enum.JOINED)

	_, err := f.svc.GetJoinRequestList("U_PLAIN", request.GetJoinRequestListRequest{GroupUuid: "G_1", Page: 1, PageSize: 10})
	if !errorx.IsForbidden(err) {
		t.Fatalf("plain member list requests err=%v, want forbidden", err)
	}
}
