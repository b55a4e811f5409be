package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campus_hub_server/internal/dto/request"
	"campus_hub_server/internal/dto/respond"
	"campus_hub_server/internal/gateway/websocket"
	"campus_hub_server/internal/handler"
	"campus_hub_server/internal/https_server"
	"campus_hub_server/internal/service"
	"campus_hub_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"
)

// ==================== Service 桩 ====================

type stubAuthService struct{}

type stubUserService struct{}

type stubGroupService struct{}

type stubMemberService struct{}

type stubPostService struct{}

type stubCommentService struct{}

type stubSocialService struct{}

type stubOrgService struct{}

type stubSearchService struct{}

type stubNotificationService struct{}

func (s stubAuthService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	return &respond.RegisterRespond{}, nil
}
func (s stubAuthService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	return &respond.LoginRespond{}, nil
}
func (s stubAuthService) SmsLogin(req request.SmsLoginRequest) (*respond.LoginRespond, error) {
	return &respond.LoginRespond{}, nil
}
func (s stubAuthService) SendSmsCode(telephone string) error { return nil }
func (s stubAuthService) RefreshToken(req request.RefreshTokenRequest) (*respond.RefreshTokenRespond, error) {
	return &respond.RefreshTokenRespond{}, nil
}
func (s stubAuthService) Logout(userUuid string) error { return nil }

func (s stubUserService) GetUserInfo(uuid string) (*respond.GetUserInfoRespond, error) {
	return &respond.GetUserInfoRespond{}, nil
}
func (s stubUserService) UpdateUserInfo(userUuid string, req request.UpdateUserInfoRequest) error {
	return nil
}

func (s stubGroupService) CreateGroup(creatorUuid string, req request.CreateGroupRequest) (*respond.GetGroupInfoRespond, error) {
	return &respond.GetGroupInfoRespond{}, nil
}
func (s stubGroupService) UpdateGroup(actorUuid string, req request.UpdateGroupRequest) error {
	return nil
}
func (s stubGroupService) DeleteGroup(actorUuid, groupUuid string) error { return nil }
func (s stubGroupService) GetGroupInfo(viewerUuid, groupUuid string) (*respond.GetGroupInfoRespond, error) {
	return &respond.GetGroupInfoRespond{}, nil
}
func (s stubGroupService) GetGroupList(req request.GetGroupListRequest) (*respond.GetGroupListRespond, error) {
	return &respond.GetGroupListRespond{}, nil
}
func (s stubGroupService) GetMyGroups(userUuid string) ([]respond.GroupSummary, error) {
	return []respond.GroupSummary{}, nil
}

func (s stubMemberService) JoinGroup(userUuid, groupUuid string) error { return nil }
func (s stubMemberService) CancelJoin(userUuid, groupUuid string) error { return nil }
func (s stubMemberService) AcceptMember(actorUuid, groupUuid, targetUuid string) error { return nil }
func (s stubMemberService) RejectMember(actorUuid, groupUuid, targetUuid string) error { return nil }
func (s stubMemberService) InviteMembers(actorUuid string, req request.InviteMembersRequest) (*respond.InviteMembersRespond, error) {
	return &respond.InviteMembersRespond{}, nil
}
func (s stubMemberService) AcceptInvite(userUuid, groupUuid string) error { return nil }
func (s stubMemberService) RejectInvite(userUuid, groupUuid string) error { return nil }
func (s stubMemberService) LeaveGroup(userUuid, groupUuid string) error { return nil }
func (s stubMemberService) RemoveMember(actorUuid, groupUuid, targetUuid string) error { return nil }
func (s stubMemberService) ChangeRole(actorUuid string, req request.ChangeRoleRequest) error {
	return nil
}
func (s stubMemberService) TransferOwnership(actorUuid, groupUuid, targetUuid string) error {
	return nil
}
func (s stubMemberService) BanMember(actorUuid, groupUuid, targetUuid string) error { return nil }
func (s stubMemberService) UnbanMember(actorUuid, groupUuid, targetUuid string) error { return nil }
func (s stubMemberService) GetMemberList(req request.GetMemberListRequest) (*respond.GetGroupMemberListRespond, error) {
	return &respond.GetGroupMemberListRespond{}, nil
}
func (s stubMemberService) GetJoinRequestList(actorUuid string, req request.GetJoinRequestListRequest) (*respond.GetJoinRequestListRespond, error) {
	return &respond.GetJoinRequestListRespond{}, nil
}

func (s stubPostService) CreatePost(authorUuid string, req request.CreatePostRequest) (*respond.PostRespond, error) {
	return &respond.PostRespond{}, nil
}
func (s stubPostService) UpdatePost(actorUuid string, req request.UpdatePostRequest) error {
	return nil
}
func (s stubPostService) DeletePost(actorUuid, postUuid string) error { return nil }
func (s stubPostService) PinPost(actorUuid string, req request.PinPostRequest) error {
	return nil
}
func (s stubPostService) ApprovePost(actorUuid, postUuid string) error { return nil }
func (s stubPostService) LikePost(userUuid, postUuid string) error { return nil }
func (s stubPostService) UnlikePost(userUuid, postUuid string) error { return nil }
func (s stubPostService) SavePost(userUuid, postUuid string) error { return nil }
func (s stubPostService) UnsavePost(userUuid, postUuid string) error { return nil }
func (s stubPostService) MarkPostRead(userUuid, postUuid string) error { return nil }
func (s stubPostService) GetPost(viewerUuid, postUuid string) (*respond.PostRespond, error) {
	return &respond.PostRespond{}, nil
}
func (s stubPostService) GetFeed(viewerUuid string, req request.GetFeedRequest) (*respond.GetFeedRespond, error) {
	return &respond.GetFeedRespond{}, nil
}
func (s stubPostService) GetPinnedFeed(viewerUuid string, req request.GetFeedRequest) (*respond.GetFeedRespond, error) {
	return &respond.GetFeedRespond{}, nil
}
func (s stubPostService) GetMarketplaceFeed(viewerUuid string, req request.GetFeedRequest) (*respond.GetFeedRespond, error) {
	return &respond.GetFeedRespond{}, nil
}

func (s stubCommentService) CreateComment(authorUuid string, req request.CreateCommentRequest) (*respond.CommentRespond, error) {
	return &respond.CommentRespond{}, nil
}
func (s stubCommentService) DeleteComment(actorUuid, commentUuid string) error { return nil }
func (s stubCommentService) GetCommentList(viewerUuid string, req request.GetCommentListRequest) (*respond.GetCommentListRespond, error) {
	return &respond.GetCommentListRespond{}, nil
}

func (s stubSocialService) Follow(userUuid, targetUuid string) error { return nil }
func (s stubSocialService) Unfollow(userUuid, targetUuid string) error { return nil }
func (s stubSocialService) GetFollowers(req request.GetSocialListRequest) (*respond.GetSocialListRespond, error) {
	return &respond.GetSocialListRespond{}, nil
}
func (s stubSocialService) GetFollowing(req request.GetSocialListRequest) (*respond.GetSocialListRespond, error) {
	return &respond.GetSocialListRespond{}, nil
}
func (s stubSocialService) ApplyFriend(userUuid, targetUuid string) error { return nil }
func (s stubSocialService) AcceptFriend(userUuid, requesterUuid string) error { return nil }
func (s stubSocialService) RejectFriend(userUuid, requesterUuid string) error { return nil }
func (s stubSocialService) DeleteFriend(userUuid, targetUuid string) error { return nil }
func (s stubSocialService) GetFriendList(userUuid string, req request.GetSocialListRequest) (*respond.GetSocialListRespond, error) {
	return &respond.GetSocialListRespond{}, nil
}
func (s stubSocialService) GetFriendRequestList(userUuid string) (*respond.GetFriendRequestListRespond, error) {
	return &respond.GetFriendRequestListRespond{}, nil
}
func (s stubSocialService) AreFriends(userA, userB string) (bool, error) { return false, nil }

func (s stubOrgService) CreateInstitution(actorUuid string, req request.CreateInstitutionRequest) (*respond.InstitutionRespond, error) {
	return &respond.InstitutionRespond{}, nil
}
func (s stubOrgService) CreateDepartment(actorUuid string, req request.CreateDepartmentRequest) (*respond.DepartmentRespond, error) {
	return &respond.DepartmentRespond{}, nil
}
func (s stubOrgService) CreateRoom(actorUuid string, req request.CreateRoomRequest) (*respond.RoomRespond, error) {
	return &respond.RoomRespond{}, nil
}
func (s stubOrgService) UpdateInstitution(actorUuid string, req request.UpdateInstitutionRequest) error {
	return nil
}
func (s stubOrgService) UpdateDepartment(actorUuid string, req request.UpdateDepartmentRequest) error {
	return nil
}
func (s stubOrgService) UpdateRoom(actorUuid string, req request.UpdateRoomRequest) error {
	return nil
}
func (s stubOrgService) GetInstitution(uuid string) (*respond.InstitutionRespond, error) {
	return &respond.InstitutionRespond{}, nil
}
func (s stubOrgService) GetInstitutionList(req request.GetOrgListRequest) (*respond.GetInstitutionListRespond, error) {
	return &respond.GetInstitutionListRespond{}, nil
}
func (s stubOrgService) GetDepartmentList(req request.GetOrgListRequest) (*respond.GetDepartmentListRespond, error) {
	return &respond.GetDepartmentListRespond{}, nil
}
func (s stubOrgService) GetRoomList(req request.GetOrgListRequest) (*respond.GetRoomListRespond, error) {
	return &respond.GetRoomListRespond{}, nil
}

func (s stubSearchService) Search(req request.SearchRequest) (*respond.SearchRespond, error) {
	return &respond.SearchRespond{}, nil
}

func (s stubNotificationService) GetNotificationList(userUuid string, req request.GetNotificationListRequest) (*respond.GetNotificationListRespond, error) {
	return &respond.GetNotificationListRespond{}, nil
}
func (s stubNotificationService) MarkRead(userUuid string, req request.MarkNotificationReadRequest) error {
	return nil
}

// stubCache 通知网关在线集合的内存桩
type stubCache struct{}

func (c stubCache) Set(ctx context.Context, key, value string, ttl time.Duration) error { return nil }
func (c stubCache) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (c stubCache) GetOrError(ctx context.Context, key string) (string, error) { return "", nil }
func (c stubCache) Delete(ctx context.Context, key string) error { return nil }
func (c stubCache) DeleteByPattern(ctx context.Context, pattern string) error { return nil }
func (c stubCache) DeleteByPatterns(ctx context.Context, patterns []string) error { return nil }
func (c stubCache) AddToSet(ctx context.Context, key string, members ...interface{}) error {
	return nil
}
func (c stubCache) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	return []string{}, nil
}
func (c stubCache) RemoveFromSet(ctx context.Context, key string, members ...interface{}) error {
	return nil
}

// ==================== 辅助函数 ====================

func mustJSON(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, client *http.Client, method, url string, body io.Reader, authHeader string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request %s %s: %v", method, url, err)
	}
	return resp
}

func requireNot5xxOr404(t *testing.T, path string, resp *http.Response) {
	t.Helper()
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode >= 500 {
		t.Fatalf("%s status=%d", path, resp.StatusCode)
	}
}

func TestAllHTTPAndWebSocketEndpoints_Smoke(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt.Init("test-secret", 15, 168)
	if err := handler.InitTrans("zh"); err != nil {
		t.Fatalf("init translator: %v", err)
	}
	websocket.InitServer(stubCache{})

	svcs := &service.Services{
		Auth:         stubAuthService{},
		User:         stubUserService{},
		Group:        stubGroupService{},
		Member:       stubMemberService{},
		Post:         stubPostService{},
		Comment:      stubCommentService{},
		Social:       stubSocialService{},
		Org:          stubOrgService{},
		Search:       stubSearchService{},
		Notification: stubNotificationService{},
	}

	engine := https_server.Init(handler.NewHandlers(svcs))
	server := httptest.NewServer(engine)
	defer server.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	accessToken, err := jwt.GenerateAccessToken("U_TEST")
	if err != nil {
		t.Fatalf("generate access token: %v", err)
	}
	authHeader := "Bearer " + accessToken

	refreshToken, _, err := jwt.GenerateRefreshToken("U_TEST")
	if err != nil {
		t.Fatalf("generate refresh token: %v", err)
	}

	// ===== 公共接口（无需鉴权） =====
	resp := doReq(t, client, http.MethodPost, server.URL+"/auth/register", mustJSON(t, map[string]any{
		"telephone":        "13000000000",
		"password":         "123456",
		"nickname":         "n",
		"sms_code":         "123456",
		"institution_uuid": "I_1",
	}), "")
	requireNot5xxOr404(t, "/auth/register", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/auth/login", mustJSON(t, map[string]any{
		"telephone": "13000000000",
		"password":  "123456",
	}), "")
	requireNot5xxOr404(t, "/auth/login", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/auth/smsLogin", mustJSON(t, map[string]any{
		"telephone": "13000000001",
		"sms_code":  "123456",
	}), "")
	requireNot5xxOr404(t, "/auth/smsLogin", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/auth/sendSmsCode", mustJSON(t, map[string]any{
		"telephone": "13000000002",
	}), "")
	requireNot5xxOr404(t, "/auth/sendSmsCode", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/auth/refresh", mustJSON(t, map[string]any{
		"refresh_token": refreshToken,
	}), "")
	requireNot5xxOr404(t, "/auth/refresh", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/auth/logout", nil, authHeader)
	requireNot5xxOr404(t, "/auth/logout", resp)
	_ = resp.Body.Close()

	// ===== 用户 =====
	resp = doReq(t, client, http.MethodGet, server.URL+"/user/getUserInfo?uuid=U_TEST", nil, authHeader)
	requireNot5xxOr404(t, "/user/getUserInfo", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/user/updateUserInfo", mustJSON(t, map[string]any{
		"nickname": "new name",
	}), authHeader)
	requireNot5xxOr404(t, "/user/updateUserInfo", resp)
	_ = resp.Body.Close()

	// ===== 群组 =====
	resp = doReq(t, client, http.MethodPost, server.URL+"/group/createGroup", mustJSON(t, map[string]any{
		"name":             "CS Study Group",
		"institution_uuid": "I_1",
	}), authHeader)
	requireNot5xxOr404(t, "/group/createGroup", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/group/updateGroup", mustJSON(t, map[string]any{
		"group_uuid": "G_1",
		"name":       "Renamed",
	}), authHeader)
	requireNot5xxOr404(t, "/group/updateGroup", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/group/deleteGroup", mustJSON(t, map[string]any{
		"group_uuid": "G_1",
	}), authHeader)
	requireNot5xxOr404(t, "/group/deleteGroup", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/group/getGroupInfo?group_uuid=G_1", nil, authHeader)
	requireNot5xxOr404(t, "/group/getGroupInfo", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/group/getGroupList?institution_uuid=I_1&page=1&page_size=10", nil, authHeader)
	requireNot5xxOr404(t, "/group/getGroupList", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/group/getMyGroups", nil, authHeader)
	requireNot5xxOr404(t, "/group/getMyGroups", resp)
	_ = resp.Body.Close()

	// ===== 群成员 =====
	for _, path := range []string{"/member/join", "/member/cancelJoin", "/member/acceptInvite", "/member/rejectInvite", "/member/leave"} {
		resp = doReq(t, client, http.MethodPost, server.URL+path, mustJSON(t, map[string]any{
			"group_uuid": "G_1",
		}), authHeader)
		requireNot5xxOr404(t, path, resp)
		_ = resp.Body.Close()
	}

	for _, path := range []string{"/member/acceptMember", "/member/rejectMember", "/member/remove", "/member/transferOwnership", "/member/ban", "/member/unban"} {
		resp = doReq(t, client, http.MethodPost, server.URL+path, mustJSON(t, map[string]any{
			"group_uuid": "G_1",
			"user_uuid":  "U_2",
		}), authHeader)
		requireNot5xxOr404(t, path, resp)
		_ = resp.Body.Close()
	}

	resp = doReq(t, client, http.MethodPost, server.URL+"/member/invite", mustJSON(t, map[string]any{
		"group_uuid": "G_1",
		"user_uuids": []string{"U_2", "U_3"},
	}), authHeader)
	requireNot5xxOr404(t, "/member/invite", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/member/changeRole", mustJSON(t, map[string]any{
		"group_uuid": "G_1",
		"user_uuid":  "U_2",
		"role":       2,
	}), authHeader)
	requireNot5xxOr404(t, "/member/changeRole", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/member/list?group_uuid=G_1&page=1&page_size=10", nil, authHeader)
	requireNot5xxOr404(t, "/member/list", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/member/joinRequestList?group_uuid=G_1", nil, authHeader)
	requireNot5xxOr404(t, "/member/joinRequestList", resp)
	_ = resp.Body.Close()

	// ===== 帖子 =====
	resp = doReq(t, client, http.MethodPost, server.URL+"/post/createPost", mustJSON(t, map[string]any{
		"group_uuid": "G_1",
		"content":    "hello campus",
	}), authHeader)
	requireNot5xxOr404(t, "/post/createPost", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/post/updatePost", mustJSON(t, map[string]any{
		"post_uuid": "P_1",
		"content":   "edited",
	}), authHeader)
	requireNot5xxOr404(t, "/post/updatePost", resp)
	_ = resp.Body.Close()

	for _, path := range []string{"/post/deletePost", "/post/approvePost", "/post/like", "/post/unlike", "/post/save", "/post/unsave", "/post/markRead"} {
		resp = doReq(t, client, http.MethodPost, server.URL+path, mustJSON(t, map[string]any{
			"post_uuid": "P_1",
		}), authHeader)
		requireNot5xxOr404(t, path, resp)
		_ = resp.Body.Close()
	}

	resp = doReq(t, client, http.MethodPost, server.URL+"/post/pinPost", mustJSON(t, map[string]any{
		"post_uuid": "P_1",
		"pinned":    true,
	}), authHeader)
	requireNot5xxOr404(t, "/post/pinPost", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/post/getPost?post_uuid=P_1", nil, authHeader)
	requireNot5xxOr404(t, "/post/getPost", resp)
	_ = resp.Body.Close()

	for _, path := range []string{"/post/feed", "/post/pinnedFeed", "/post/marketplaceFeed"} {
		resp = doReq(t, client, http.MethodGet, server.URL+path+"?group_uuid=G_1&page=1&page_size=10", nil, authHeader)
		requireNot5xxOr404(t, path, resp)
		_ = resp.Body.Close()
	}

	// ===== 评论 =====
	resp = doReq(t, client, http.MethodPost, server.URL+"/comment/createComment", mustJSON(t, map[string]any{
		"post_uuid": "P_1",
		"content":   "nice",
	}), authHeader)
	requireNot5xxOr404(t, "/comment/createComment", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/comment/deleteComment", mustJSON(t, map[string]any{
		"comment_uuid": "C_1",
	}), authHeader)
	requireNot5xxOr404(t, "/comment/deleteComment", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/comment/list?post_uuid=P_1&page=1&page_size=10", nil, authHeader)
	requireNot5xxOr404(t, "/comment/list", resp)
	_ = resp.Body.Close()

	// ===== 社交 =====
	for _, path := range []string{"/social/follow", "/social/unfollow", "/social/applyFriend", "/social/acceptFriend", "/social/rejectFriend", "/social/deleteFriend"} {
		resp = doReq(t, client, http.MethodPost, server.URL+path, mustJSON(t, map[string]any{
			"user_uuid": "U_2",
		}), authHeader)
		requireNot5xxOr404(t, path, resp)
		_ = resp.Body.Close()
	}

	for _, path := range []string{"/social/followers", "/social/following", "/social/friends"} {
		resp = doReq(t, client, http.MethodGet, server.URL+path+"?user_uuid=U_TEST&page=1&page_size=10", nil, authHeader)
		requireNot5xxOr404(t, path, resp)
		_ = resp.Body.Close()
	}

	resp = doReq(t, client, http.MethodGet, server.URL+"/social/friendRequests", nil, authHeader)
	requireNot5xxOr404(t, "/social/friendRequests", resp)
	_ = resp.Body.Close()

	// ===== 组织目录 =====
	resp = doReq(t, client, http.MethodPost, server.URL+"/org/createInstitution", mustJSON(t, map[string]any{
		"name": "Test University",
	}), authHeader)
	requireNot5xxOr404(t, "/org/createInstitution", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/org/createDepartment", mustJSON(t, map[string]any{
		"institution_uuid": "I_1",
		"name":             "Computer Science",
	}), authHeader)
	requireNot5xxOr404(t, "/org/createDepartment", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/org/createRoom", mustJSON(t, map[string]any{
		"department_uuid": "D_1",
		"name":            "Lab 101",
	}), authHeader)
	requireNot5xxOr404(t, "/org/createRoom", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/org/updateInstitution", mustJSON(t, map[string]any{
		"institution_uuid": "I_1",
		"city":             "Nicosia",
	}), authHeader)
	requireNot5xxOr404(t, "/org/updateInstitution", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/org/updateDepartment", mustJSON(t, map[string]any{
		"department_uuid": "D_1",
		"name":            "CS & Engineering",
	}), authHeader)
	requireNot5xxOr404(t, "/org/updateDepartment", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/org/updateRoom", mustJSON(t, map[string]any{
		"room_uuid": "R_1",
		"capacity":  60,
	}), authHeader)
	requireNot5xxOr404(t, "/org/updateRoom", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/org/getInstitution?uuid=I_1", nil, authHeader)
	requireNot5xxOr404(t, "/org/getInstitution", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/org/institutions?page=1&page_size=10", nil, authHeader)
	requireNot5xxOr404(t, "/org/institutions", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/org/departments?parent_uuid=I_1", nil, authHeader)
	requireNot5xxOr404(t, "/org/departments", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/org/rooms?parent_uuid=D_1", nil, authHeader)
	requireNot5xxOr404(t, "/org/rooms", resp)
	_ = resp.Body.Close()

	// ===== 搜索与通知 =====
	resp = doReq(t, client, http.MethodGet, server.URL+"/search?keyword=algo&scope=group", nil, authHeader)
	requireNot5xxOr404(t, "/search", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodGet, server.URL+"/notification/list?page=1&page_size=10", nil, authHeader)
	requireNot5xxOr404(t, "/notification/list", resp)
	_ = resp.Body.Close()

	resp = doReq(t, client, http.MethodPost, server.URL+"/notification/markRead", mustJSON(t, map[string]any{
		"notification_uuid": "",
	}), authHeader)
	requireNot5xxOr404(t, "/notification/markRead", resp)
	_ = resp.Body.Close()

	// ===== 未鉴权访问被拒 =====
	resp = doReq(t, client, http.MethodGet, server.URL+"/group/getMyGroups", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("/group/getMyGroups without token status=%d, want 401", resp.StatusCode)
	}
	_ = resp.Body.Close()

	// ===== WebSocket 通知推送 =====
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	headers := http.Header{}
	headers.Set("Authorization", authHeader)
	wsConn, _, err := gorillaws.DefaultDialer.Dial(wsURL, headers)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	_ = wsConn.Close()
}
