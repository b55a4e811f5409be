package group

import (
	"strings"
	"testing"

	"campus_hub_server/internal/dao/mysql/repository"
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/model"
	"campus_hub_server/pkg/enum/group/group_privacy_enum"
	"campus_hub_server/pkg/enum/group/group_role_enum"
	"campus_hub_server/pkg/enum/group/member_status_enum"
	"campus_hub_server/pkg/errorx"
)

// ==================== 内存桩 ====================

type fakeGroupRepo struct {
	groups map[string]*model.GroupInfo // uuid -> group
	slugs  map[string]bool             // institutionUuid+"/"+slug 占用表
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{
		groups: make(map[string]*model.GroupInfo),
		slugs:  make(map[string]bool),
	}
}

func slugKey(institutionUuid, s string) string { return institutionUuid + "/" + s }

func (f *fakeGroupRepo) FindByUuid(uuid string) (*model.GroupInfo, error) {
	g, ok := f.groups[uuid]
	if !ok {
		return nil, errorx.New(errorx.CodeNotFound, "群组不存在")
	}
	return g, nil
}
func (f *fakeGroupRepo) FindBySlug(institutionUuid, s string) (*model.GroupInfo, error) {
	if f.slugs[slugKey(institutionUuid, s)] {
		return &model.GroupInfo{Slug: s}, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "群组不存在")
}
func (f *fakeGroupRepo) FindByOwnerId(ownerId string) ([]model.GroupInfo, error) { return nil, nil }
func (f *fakeGroupRepo) GetGroupList(institutionUuid string, page, pageSize int) ([]model.GroupInfo, int64, error) {
	var out []model.GroupInfo
	for _, g := range f.groups {
		if g.InstitutionUuid == institutionUuid {
			out = append(out, *g)
		}
	}
	return out, int64(len(out)), nil
}
func (f *fakeGroupRepo) Create(group *model.GroupInfo) error {
	key := slugKey(group.InstitutionUuid, group.Slug)
	if f.slugs[key] {
		return errorx.New(errorx.CodeConflict, "slug 冲突")
	}
	f.slugs[key] = true
	f.groups[group.Uuid] = group
	return nil
}
func (f *fakeGroupRepo) Update(group *model.GroupInfo) error {
	f.groups[group.Uuid] = group
	return nil
}
func (f *fakeGroupRepo) IncrementMemberCount(uuid string) error { f.groups[uuid].MembersCount++; return nil }
func (f *fakeGroupRepo) DecrementMemberCount(uuid string) error { f.groups[uuid].MembersCount--; return nil }
func (f *fakeGroupRepo) IncrementPostCount(uuid string) error   { f.groups[uuid].PostsCount++; return nil }
func (f *fakeGroupRepo) DecrementPostCount(uuid string) error   { f.groups[uuid].PostsCount--; return nil }
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

func (f *fakeMemberRepo) FindByGroupAndUser(groupUuid, userUuid string) (*model.GroupMember, error) {
	m, ok := f.members[memberKey(groupUuid, userUuid)]
	if !ok {
		return nil, errorx.New(errorx.CodeNotFound, "成员记录不存在")
	}
	return m, nil
}
func (f *fakeMemberRepo) FindByGroupAndStatus(groupUuid string, status int8, page, pageSize int) ([]model.GroupMember, int64, error) {
	return nil, 0, nil
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
	f.members[memberKey(member.GroupUuid, member.UserUuid)] = member
	return nil
}
func (f *fakeMemberRepo) UpdateRole(groupUuid, userUuid string, role int8) error     { return nil }
func (f *fakeMemberRepo) UpdateStatus(groupUuid, userUuid string, status int8) error { return nil }
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
	return nil, 0, nil
}

type fakeInstitutionRepo struct {
	uuids map[string]bool
}

func (f *fakeInstitutionRepo) FindByUuid(uuid string) (*model.Institution, error) {
	if !f.uuids[uuid] {
		return nil, errorx.New(errorx.CodeNotFound, "机构不存在")
	}
	return &model.Institution{Uuid: uuid}, nil
}
func (f *fakeInstitutionRepo) FindBySlug(s string) (*model.Institution, error) {
	return nil, errorx.New(errorx.CodeNotFound, "机构不存在")
}
func (f *fakeInstitutionRepo) Create(inst *model.Institution) error { return nil }
func (f *fakeInstitutionRepo) Update(inst *model.Institution) error { return nil }
func (f *fakeInstitutionRepo) GetList(page, pageSize int) ([]model.Institution, int64, error) {
	return nil, 0, nil
}

type fakePostRepo struct {
	byGroup map[string][]string // groupUuid -> post uuids
	deleted []string
}

func (f *fakePostRepo) FindByUuid(uuid string) (*model.Post, error) {
	return nil, errorx.New(errorx.CodeNotFound, "帖子不存在")
}
func (f *fakePostRepo) FindFeed(filter repository.FeedFilter) ([]model.Post, int64, error) {
	return nil, 0, nil
}
func (f *fakePostRepo) FindUuidsByGroupUuid(groupUuid string) ([]string, error) {
	return f.byGroup[groupUuid], nil
}
func (f *fakePostRepo) Create(post *model.Post) error                       { return nil }
func (f *fakePostRepo) Update(post *model.Post) error                       { return nil }
func (f *fakePostRepo) SetPinned(uuid string, pinned bool) error            { return nil }
func (f *fakePostRepo) SetApproved(uuid string, approved bool) error        { return nil }
func (f *fakePostRepo) IncrementLikeCount(uuid string, delta int) error     { return nil }
func (f *fakePostRepo) IncrementCommentCount(uuid string, delta int) error  { return nil }
func (f *fakePostRepo) SoftDelete(uuid string) error                        { return nil }
func (f *fakePostRepo) SoftDeleteByUuids(uuids []string) error {
	f.deleted = append(f.deleted, uuids...)
	return nil
}
func (f *fakePostRepo) SearchByKeyword(keyword string, page, pageSize int) ([]model.Post, int64, error) {
	return nil, 0, nil
}

type fakeCommentRepo struct {
	deletedPostUuids []string
}

func (f *fakeCommentRepo) FindByUuid(uuid string) (*model.Comment, error) {
	return nil, errorx.New(errorx.CodeNotFound, "评论不存在")
}
func (f *fakeCommentRepo) FindByPostUuid(postUuid string, page, pageSize int) ([]model.Comment, int64, error) {
	return nil, 0, nil
}
func (f *fakeCommentRepo) Create(comment *model.Comment) error { return nil }
func (f *fakeCommentRepo) SoftDelete(uuid string) error        { return nil }
func (f *fakeCommentRepo) SoftDeleteByPostUuids(postUuids []string) error {
	f.deletedPostUuids = append(f.deletedPostUuids, postUuids...)
	return nil
}

// ==================== 测试脚手架 ====================

type fixture struct {
	svc      *groupService
	groups   *fakeGroupRepo
	members  *fakeMemberRepo
	posts    *fakePostRepo
	comments *fakeCommentRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	groups := newFakeGroupRepo()
	members := newFakeMemberRepo()
	posts := &fakePostRepo{byGroup: make(map[string][]string)}
	comments := &fakeCommentRepo{}

	repos := repository.NewStubRepositories(func(r *repository.Repositories) {
		r.Group = groups
		r.GroupMember = members
		r.Post = posts
		r.Comment = comments
		r.Institution = &fakeInstitutionRepo{uuids: map[string]bool{"I_1": true}}
	})
	return &fixture{
		svc:      NewGroupService(repos, nil),
		groups:   groups,
		members:  members,
		posts:    posts,
		comments: comments,
	}
}

// ==================== 创建 ====================

func TestCreateGroupCreatorBecomesOwner(t *testing.T) {
	f := newFixture(t)

	rsp, err := f.svc.CreateGroup("U_1", request.CreateGroupRequest{
		Name:            "CS Study Group",
		InstitutionUuid: "I_1",
		Privacy:         group_privacy_enum.PUBLIC,
	})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if rsp.OwnerId != "U_1" || rsp.MembersCount != 1 {
		t.Fatalf("ownerId=%s membersCount=%d", rsp.OwnerId, rsp.MembersCount)
	}
	if !rsp.Viewer.IsOwner || !rsp.Viewer.IsMember {
		t.Fatalf("viewer meta = %+v, want owner+member", rsp.Viewer)
	}
	m, err := f.members.FindByGroupAndUser(rsp.Uuid, "U_1")
	if err != nil {
		t.Fatalf("owner member record missing: %v", err)
	}
	if m.Role != group_role_enum.OWNER || m.Status != member_status_enum.JOINED {
		t.Fatalf("owner record role=%d status=%d", m.Role, m.Status)
	}
}

func TestCreateGroupUnknownInstitution(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateGroup("U_1", request.CreateGroupRequest{
		Name:            "Study",
		InstitutionUuid: "I_NOPE",
	})
	if !errorx.IsNotFound(err) {
		t.Fatalf("unknown institution err=%v, want not found", err)
	}
}

func TestCreateGroupInvalidPrivacy(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateGroup("U_1", request.CreateGroupRequest{
		Name:            "Study",
		InstitutionUuid: "I_1",
		Privacy:         9,
	})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("invalid privacy err=%v, want invalid param", err)
	}
}

// ==================== slug 去重 ====================

func TestResolveSlugUniqueWithinInstitution(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.CreateGroup("U_1", request.CreateGroupRequest{
		Name: "Study Group", InstitutionUuid: "I_1",
	})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := f.svc.CreateGroup("U_2", request.CreateGroupRequest{
		Name: "Study Group", InstitutionUuid: "I_1",
	})
	if err != nil {
		t.Fatalf("create second with same name: %v", err)
	}
	if first.Slug == second.Slug {
		t.Fatalf("duplicate slug %q within institution", first.Slug)
	}
	// 冲突时保留基础 slug 前缀，追加去重后缀
	if !strings.HasPrefix(second.Slug, "study-group") {
		t.Fatalf("second slug=%q, want study-group prefix", second.Slug)
	}
}

// ==================== 更新 ====================

func TestUpdateGroupNilFieldsKept(t *testing.T) {
	f := newFixture(t)
	rsp, err := f.svc.CreateGroup("U_1", request.CreateGroupRequest{
		Name: "Study", Description: "original", InstitutionUuid: "I_1",
	})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	newName := "Renamed"
	if err := f.svc.UpdateGroup("U_1", request.UpdateGroupRequest{
		GroupUuid: rsp.Uuid,
		Name:      &newName,
	}); err != nil {
		t.Fatalf("update group: %v", err)
	}
	g := f.groups.groups[rsp.Uuid]
	if g.Name != "Renamed" || g.Description != "original" {
		t.Fatalf("name=%q description=%q, want rename only", g.Name, g.Description)
	}
}

func TestUpdateGroupRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	rsp, err := f.svc.CreateGroup("U_1", request.CreateGroupRequest{
		Name: "Study", InstitutionUuid: "I_1",
	})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	f.members.Create(&model.GroupMember{
		GroupUuid: rsp.Uuid, UserUuid: "U_MOD",
		Role: group_role_enum.MODERATOR, Status: member_status_enum.JOINED,
	})

	newName := "Renamed"
	err = f.svc.UpdateGroup("U_MOD", request.UpdateGroupRequest{GroupUuid: rsp.Uuid, Name: &newName})
	if !errorx.IsForbidden(err) {
		t.Fatalf("moderator update err=%v, want forbidden", err)
	}
}

// ==================== 删除 ====================

func TestDeleteGroupCascades(t *testing.T) {
	f := newFixture(t)
	rsp, err := f.svc.CreateGroup("U_1", request.CreateGroupRequest{
		Name: "Study", InstitutionUuid: "I_1",
	})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	f.posts.byGroup[rsp.Uuid] = []string{"P_1", "P_2"}

	if err := f.svc.DeleteGroup("U_1", rsp.Uuid); err != nil {
		t.Fatalf("delete group: %v", err)
	}
	if _, ok := f.groups.groups[rsp.Uuid]; ok {
		t.Fatalf("group still present after delete")
	}
	if _, err := f.members.FindByGroupAndUser(rsp.Uuid, "U_1"); !errorx.IsNotFound(err) {
		t.Fatalf("member records not cascaded")
	}
	if len(f.posts.deleted) != 2 {
		t.Fatalf("deleted posts=%v, want P_1 P_2", f.posts.deleted)
	}
	if len(f.comments.deletedPostUuids) != 2 {
		t.Fatalf("comment cascade postUuids=%v, want P_1 P_2", f.comments.deletedPostUuids)
	}
}

func TestDeleteGroupOnlyOwner(t *testing.T) {
	f := newFixture(t)
	rsp, err := f.svc.CreateGroup("U_1", request.CreateGroupRequest{
		Name: "Study", InstitutionUuid: "I_1",
	})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	err = f.svc.DeleteGroup("U_2", rsp.Uuid)
	if !errorx.IsForbidden(err) {
		t.Fatalf("non-owner delete err=%v, want forbidden", err)
	}
}

// ==================== 查看者元信息 ====================

func TestGroupInfoViewerMeta(t *testing.T) {
	f := newFixture(t)
	rsp, err := f.svc.CreateGroup("U_1", request.CreateGroupRequest{
		Name: "Study", InstitutionUuid: "I_1",
		AllowMemberPosting: false,
	})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	f.members.Create(&model.GroupMember{
		GroupUuid: rsp.Uuid, UserUuid: "U_PLAIN",
		Role: group_role_enum.MEMBER, Status: member_status_enum.JOINED,
	})
	f.members.Create(&model.GroupMember{
		GroupUuid: rsp.Uuid, UserUuid: "U_PENDING",
		Role: group_role_enum.MEMBER, Status: member_status_enum.PENDING,
	})

	// 普通成员：禁止成员发帖的群里 CanPost=false
	info, err := f.svc.GetGroupInfo("U_PLAIN", rsp.Uuid)
	if err != nil {
		t.Fatalf("get group info: %v", err)
	}
	if !info.Viewer.IsMember || info.Viewer.CanPost || info.Viewer.CanModerate {
		t.Fatalf("plain member viewer meta = %+v", info.Viewer)
	}

	// 待审核用户
	info, err = f.svc.GetGroupInfo("U_PENDING", rsp.Uuid)
	if err != nil {
		t.Fatalf("get group info: %v", err)
	}
	if !info.Viewer.IsPending || info.Viewer.IsMember {
		t.Fatalf("pending viewer meta = %+v", info.Viewer)
	}

	// 陌生人
	info, err = f.svc.GetGroupInfo("U_STRANGER", rsp.Uuid)
	if err != nil {
		t.Fatalf("get group info: %v", err)
	}
	if info.Viewer.IsMember || info.Viewer.IsPending || info.Viewer.IsBanned {
		t.Fatalf("stranger viewer meta = %+v", info.Viewer)
	}
}
