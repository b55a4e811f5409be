package comment

import (
	"testing"

	"campus_hub_server/internal/dao/mysql/repository"
	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/model"
	"campus_hub_server/pkg/enum/group/group_role_enum"
	"campus_hub_server/pkg/enum/group/member_status_enum"
	"campus_hub_server/pkg/errorx"
)

// ==================== 内存桩 ====================

type fakePostRepo struct {
	posts map[string]*model.Post
}

func (f *fakePostRepo) FindByUuid(uuid string) (*model.Post, error) {
	post, ok := f.posts[uuid]
	if !ok {
		return nil, errorx.New(errorx.CodeNotFound, "帖子不存在")
	}
	return post, nil
}
func (f *fakePostRepo) FindFeed(filter repository.FeedFilter) ([]model.Post, int64, error) {
	return nil, 0, nil
}
func (f *fakePostRepo) FindUuidsByGroupUuid(groupUuid string) ([]string, error) { return nil, nil }
func (f *fakePostRepo) Create(post *model.Post) error { return nil }
func (f *fakePostRepo) Update(post *model.Post) error { return nil }
func (f *fakePostRepo) SetPinned(uuid string, pinned bool) error { return nil }
func (f *fakePostRepo) SetApproved(uuid string, approved bool) error { return nil }
func (f *fakePostRepo) IncrementLikeCount(uuid string, delta int) error { return nil }
func (f *fakePostRepo) IncrementCommentCount(uuid string, delta int) error {
	post, ok := f.posts[uuid]
	if !ok {
		return errorx.New(errorx.CodeNotFound, "帖子不存在")
	}
	post.CommentsCount += delta
	return nil
}
func (f *fakePostRepo) SoftDelete(uuid string) error { return nil }
func (f *fakePostRepo) SoftDeleteByUuids(uuids []string) error { return nil }
func (f *fakePostRepo) SearchByKeyword(keyword string, page, pageSize int) ([]model.Post, int64, error) {
	return nil, 0, nil
}

type fakeCommentRepo struct {
	comments map[string]*model.Comment
}

func (f *fakeCommentRepo) FindByUuid(uuid string) (*model.Comment, error) {
	comment, ok := f.comments[uuid]
	if !ok {
		return nil, errorx.New(errorx.CodeNotFound, "评论不存在")
	}
	return comment, nil
}
func (f *fakeCommentRepo) FindByPostUuid(postUuid string, page, pageSize int) ([]model.Comment, int64, error) {
	var out []model.Comment
	for _, c := range f.comments {
		if c.PostUuid == postUuid {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}
func (f *fakeCommentRepo) Create(comment *model.Comment) error {
	f.comments[comment.Uuid] = comment
	return nil
}
func (f *fakeCommentRepo) SoftDelete(uuid string) error {
	delete(f.comments, uuid)
	return nil
}
func (f *fakeCommentRepo) SoftDeleteByPostUuids(postUuids []string) error { return nil }

type fakeMemberRepo struct {
	members map[string]*model.GroupMember // groupUuid+"/"+userUuid
}

func memberKey(groupUuid, userUuid string) string { return groupUuid + "/" + userUuid }

func (f *fakeMemberRepo) FindByGroupAndUser(groupUuid, userUuid string) (*model.GroupMember, error) {
	member, ok := f.members[memberKey(groupUuid, userUuid)]
	if !ok {
		return nil, errorx.New(errorx.CodeNotFound, "成员记录不存在")
	}
	return member, nil
}
func (f *fakeMemberRepo) FindByGroupAndStatus(groupUuid string, status int8, page, pageSize int) ([]model.GroupMember, int64, error) {
	return nil, 0, nil
}
func (f *fakeMemberRepo) FindJoinedByUser(userUuid string) ([]model.GroupMember, error) {
	return nil, nil
}
func (f *fakeMemberRepo) Create(member *model.GroupMember) error { return nil }
func (f *fakeMemberRepo) UpdateRole(groupUuid, userUuid string, role int8) error { return nil }
func (f *fakeMemberRepo) UpdateStatus(groupUuid, userUuid string, status int8) error {
	return nil
}
func (f *fakeMemberRepo) Delete(groupUuid, userUuid string) error { return nil }
func (f *fakeMemberRepo) SoftDeleteByGroupUuid(groupUuid string) error { return nil }
func (f *fakeMemberRepo) FindMembersWithUserInfo(groupUuid string, page, pageSize int) ([]repository.GroupMemberWithUserInfo, int64, error) {
	return nil, 0, nil
}

type fakeUserRepo struct{}

func (f *fakeUserRepo) FindByUuid(uuid string) (*model.UserInfo, error) {
	return &model.UserInfo{Uuid: uuid, Nickname: "nick-" + uuid}, nil
}
func (f *fakeUserRepo) FindByTelephone(telephone string) (*model.UserInfo, error) {
	return nil, errorx.New(errorx.CodeNotFound, "用户不存在")
}
func (f *fakeUserRepo) FindByUuids(uuids []string) ([]model.UserInfo, error) {
	out := make([]model.UserInfo, 0, len(uuids))
	for _, uuid := range uuids {
		out = append(out, model.UserInfo{Uuid: uuid, Nickname: "nick-" + uuid})
	}
	return out, nil
}
func (f *fakeUserRepo) Create(user *model.UserInfo) error { return nil }
func (f *fakeUserRepo) UpdateUserInfo(user *model.UserInfo) error { return nil }
func (f *fakeUserRepo) SearchByKeyword(keyword string, page, pageSize int) ([]model.UserInfo, int64, error) {
	return nil, 0, nil
}

// ==================== 测试脚手架 ====================

type fixture struct {
	svc      *commentService
	posts    *fakePostRepo
	comments *fakeCommentRepo
	members  *fakeMemberRepo
}

// newFixture 搭建场景：群组 G_1 下有帖子 P_1（作者 U_AUTHOR），
// 成员包括 U_AUTHOR、协管员 U_MOD 和普通成员 U_PLAIN
func newFixture(t *testing.T) *fixture {
	t.Helper()
	posts := &fakePostRepo{posts: map[string]*model.Post{
		"P_1": {Uuid: "P_1", GroupUuid: "G_1", AuthorUuid: "U_AUTHOR", Content: "原帖"},
	}}
	comments := &fakeCommentRepo{comments: make(map[string]*model.Comment)}
	members := &fakeMemberRepo{members: map[string]*model.GroupMember{
		memberKey("G_1", "U_AUTHOR"): {GroupUuid: "G_1", UserUuid: "U_AUTHOR", Role: group_role_enum.MEMBER, Status: member_status_enum.JOINED},
		memberKey("G_1", "U_MOD"):    {GroupUuid: "G_1", UserUuid: "U_MOD", Role: group_role_enum.MODERATOR, Status: member_status_enum.JOINED},
		memberKey("G_1", "U_PLAIN"):  {GroupUuid: "G_1", UserUuid: "U_PLAIN", Role: group_role_enum.MEMBER, Status: member_status_enum.JOINED},
	}}
	repos := repository.NewStubRepositories(func(r *repository.Repositories) {
		r.Post = posts
		r.Comment = comments
		r.GroupMember = members
		r.User = &fakeUserRepo{}
	})
	return &fixture{
		svc:      NewCommentService(repos, nil),
		posts:    posts,
		comments: comments,
		members:  members,
	}
}

// ==================== 测试用例 ====================

func TestCreateComment(t *testing.T) {
	f := newFixture(t)

	rsp, err := f.svc.CreateComment("U_PLAIN", request.CreateCommentRequest{
		PostUuid: "P_1",
		Content:  "顶一个",
	})
	if err != nil {
		t.Fatalf("create comment: %v", err)
	}
	if rsp.AuthorNickname != "nick-U_PLAIN" {
		t.Fatalf("author nickname=%q", rsp.AuthorNickname)
	}
	if f.posts.posts["P_1"].CommentsCount != 1 {
		t.Fatalf("comments count=%d, want 1", f.posts.posts["P_1"].CommentsCount)
	}
	if _, ok := f.comments.comments[rsp.Uuid]; !ok {
		t.Fatalf("comment record not created")
	}
}

func TestCreateCommentRequiresMembership(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateComment("U_STRANGER", request.CreateCommentRequest{
		PostUuid: "P_1",
		Content:  "路过",
	})
	if !errorx.IsForbidden(err) {
		t.Fatalf("stranger comment err=%v, want forbidden", err)
	}

	// 被封禁成员同样不能评论
	f.members.members[memberKey("G_1", "U_BANNED")] = &model.GroupMember{
		GroupUuid: "G_1", UserUuid: "U_BANNED",
		Role: group_role_enum.MEMBER, Status: member_status_enum.BANNED,
	}
	_, err = f.svc.CreateComment("U_BANNED", request.CreateCommentRequest{
		PostUuid: "P_1",
		Content:  "放我出去",
	})
	if !errorx.IsForbidden(err) {
		t.Fatalf("banned member comment err=%v, want forbidden", err)
	}
}

func TestCreateCommentUnknownPost(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateComment("U_PLAIN", request.CreateCommentRequest{
		PostUuid: "P_GHOST",
		Content:  "x",
	})
	if !errorx.IsNotFound(err) {
		t.Fatalf("comment on unknown post err=%v, want not found", err)
	}
}

func TestDeleteCommentPermissions(t *testing.T) {
	f := newFixture(t)

	seed := func(uuid string) {
		f.comments.comments[uuid] = &model.Comment{Uuid: uuid, PostUuid: "P_1", AuthorUuid: "U_PLAIN"}
		f.posts.posts["P_1"].CommentsCount++
	}

	// 评论作者可删
	seed("C_1")
	if err := f.svc.DeleteComment("U_PLAIN", "C_1"); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	// 帖子作者可删
	seed("C_2")
	if err := f.svc.DeleteComment("U_AUTHOR", "C_2"); err != nil {
		t.Fatalf("post author delete: %v", err)
	}
	// 协管员可删
	seed("C_3")
	if err := f.svc.DeleteComment("U_MOD", "C_3"); err != nil {
		t.Fatalf("moderator delete: %v", err)
	}
	// 其他成员不可删
	seed("C_4")
	if err := f.svc.DeleteComment("U_STRANGER", "C_4"); !errorx.IsForbidden(err) {
		t.Fatalf("stranger delete err=%v, want forbidden", err)
	}

	if f.posts.posts["P_1"].CommentsCount != 1 {
		t.Fatalf("comments count=%d, want 1", f.posts.posts["P_1"].CommentsCount)
	}
}

func TestGetCommentList(t *testing.T) {
	f := newFixture(t)
	f.comments.comments["C_1"] = &model.Comment{Uuid: "C_1", PostUuid: "P_1", AuthorUuid: "U_PLAIN", Content: "一楼"}
	f.comments.comments["C_2"] = &model.Comment{Uuid: "C_2", PostUuid: "P_1", AuthorUuid: "U_MOD", Content: "二楼"}
	f.comments.comments["C_X"] = &model.Comment{Uuid: "C_X", PostUuid: "P_OTHER", AuthorUuid: "U_PLAIN", Content: "别处"}

	rsp, err := f.svc.GetCommentList("U_PLAIN", request.GetCommentListRequest{
		PostUuid: "P_1",
		Page:     1,
		PageSize: 10,
	})
	if err != nil {
		t.Fatalf("get comment list: %v", err)
	}
	if len(rsp.Comments) != 2 {
		t.Fatalf("comments=%d, want 2", len(rsp.Comments))
	}
	for _, c := range rsp.Comments {
		if c.AuthorNickname == "" {
			t.Fatalf("comment %s missing author nickname", c.Uuid)
		}
	}
}
