package respond

// GroupViewerMeta 查看者视角的群组元信息
// 由查看者的成员记录推导，未登录或非成员时全部为零值
type GroupViewerMeta struct {
	IsMember     bool `json:"is_member"`     // 是否已加入
	IsPending    bool `json:"is_pending"`    // 申请是否待审核
	IsInvited    bool `json:"is_invited"`    // 是否有待处理的邀请
	IsBanned     bool `json:"is_banned"`     // 是否已被封禁
	IsOwner      bool `json:"is_owner"`      // 是否为群主
	IsAdmin      bool `json:"is_admin"`      // 是否为管理员以上
	IsModerator  bool `json:"is_moderator"`  // 是否为协管员以上
	Role         int8 `json:"role"`          // 群内角色，非成员为 0
	CanPost      bool `json:"can_post"`      // 是否可以发帖
	CanModerate  bool `json:"can_moderate"`  // 是否可以审核帖子/处理申请
	CanManage    bool `json:"can_manage"`    // 是否可以管理群组设置和成员
}

// GetGroupInfoRespond 获取群组信息响应
// 使用位置:
//   - internal/service/group/service.go: GetGroupInfo
type GetGroupInfoRespond struct {
	Uuid                string          `json:"uuid"`
	Name                string          `json:"name"`
	Slug                string          `json:"slug"`
	InstitutionUuid     string          `json:"institution_uuid"`
	Description         string          `json:"description"`
	Avatar              string          `json:"avatar"`
	OwnerId             string          `json:"owner_id"`
	Privacy             int8            `json:"privacy"`
	Type                int8            `json:"type"`
	AllowMemberPosting  bool            `json:"allow_member_posting"`
	RequirePostApproval bool            `json:"require_post_approval"`
	MembersCount        int             `json:"members_count"`
	PostsCount          int             `json:"posts_count"`
	CreatedAt           string          `json:"created_at"`
	Viewer              GroupViewerMeta `json:"viewer"`
}
