// Package commentsvc - Test các builder pipeline bình luận.
package commentsvc

import (
	"testing"

	commentmodels "meta_tube/internal/api/comment/models"
	"meta_tube/internal/global"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setTestColNames() {
	global.MongoDB_ColNames = global.MongoDB_CollectionName{
		Users:     "users",
		Images:    "images",
		Comments:  "comments",
		Reactions: "reactions",
	}
}

func TestBuildTopLevelBasePipeline_LocParentIdNull(t *testing.T) {
	contentID := primitive.NewObjectID()
	pipeline := buildTopLevelBasePipeline(contentID, commentmodels.ContentTypeVideo)
	require.Len(t, pipeline, 2)

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, contentID, match["contentId"])
	assert.Equal(t, commentmodels.ContentTypeVideo, match["contentType"])

	parentID, ok := match["parentId"]
	require.True(t, ok, "pipeline bình luận gốc phải lọc parentId")
	assert.Nil(t, parentID, "bình luận gốc là document có parentId null")

	assert.Equal(t, bson.M{"$sort": bson.M{"createdAt": -1}}, pipeline[1], "bình luận gốc phải mới nhất trước")
}

func TestBuildRepliesBasePipeline_CuNhatTruoc(t *testing.T) {
	parentID := primitive.NewObjectID()
	pipeline := buildRepliesBasePipeline(parentID)
	require.Len(t, pipeline, 2)

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, parentID, match["parentId"])

	assert.Equal(t, bson.M{"$sort": bson.M{"createdAt": 1}}, pipeline[1], "trả lời phải theo dòng hội thoại, cũ nhất trước")
}

func TestTopLevelViewStages_DemTraLoiVaStripFieldTam(t *testing.T) {
	setTestColNames()
	stages := topLevelViewStages(primitive.NilObjectID, "h", "/p")
	require.NotEmpty(t, stages)

	var hasReplyCount, hasRepliesLookup bool
	for _, st := range stages {
		if lookup, ok := st["$lookup"].(bson.M); ok && lookup["as"] == "_replies" {
			hasRepliesLookup = true
			assert.Equal(t, "comments", lookup["from"])
			assert.Equal(t, "parentId", lookup["foreignField"], "đếm trả lời phải join theo parentId")
		}
		if add, ok := st["$addFields"].(bson.M); ok {
			if _, ok := add["replyCount"]; ok {
				hasReplyCount = true
			}
		}
	}
	assert.True(t, hasRepliesLookup, "thiếu lookup đếm trả lời")
	assert.True(t, hasReplyCount, "thiếu field replyCount")

	// Stage cuối phải strip field nhạy cảm của tác giả lẫn field tạm _replies
	last := stages[len(stages)-1]
	project, ok := last["$project"].(bson.M)
	require.True(t, ok, "stage cuối phải là $project")
	assert.Equal(t, 0, project["author.password"])
	assert.Equal(t, 0, project["_replies"])
}

func TestReplyViewStages_ReplyAccountTuyChon(t *testing.T) {
	setTestColNames()
	stages := replyViewStages(primitive.NilObjectID, "h", "/p")
	require.NotEmpty(t, stages)

	// Join replyAccount phải là unwind giữ document (trả lời không nhắm ai vẫn hiển thị)
	var hasPreserveUnwind, hasRemoveCond bool
	for _, st := range stages {
		if unwind, ok := st["$unwind"].(bson.M); ok && unwind["path"] == "$replyAccount" {
			hasPreserveUnwind = true
			assert.Equal(t, true, unwind["preserveNullAndEmptyArrays"])
		}
		if add, ok := st["$addFields"].(bson.M); ok {
			if cond, ok := add["replyAccount"].(bson.M); ok {
				if arr, ok := cond["$cond"].(bson.A); ok && len(arr) == 3 {
					hasRemoveCond = arr[2] == "$$REMOVE"
				}
			}
		}
	}
	assert.True(t, hasPreserveUnwind, "join replyAccount phải giữ document khi không có trả lời nhắm đến ai")
	assert.True(t, hasRemoveCond, "replyAccount vắng mặt phải bị xóa khỏi document thay vì thành object rỗng")

	last := stages[len(stages)-1]
	project, ok := last["$project"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, 0, project["author.password"], "field nhạy cảm của tác giả phải bị strip")
	assert.Equal(t, 0, project["replyAccount.password"], "field nhạy cảm của replyAccount phải bị strip")
}

func TestFilterXoaBinhLuan(t *testing.T) {
	accountID := primitive.NewObjectID()
	commentID := primitive.NewObjectID()

	owned := ownedCommentFilter(accountID, commentID)
	assert.Equal(t, bson.M{"_id": commentID, "accountId": accountID}, owned,
		"filter sở hữu phải khớp cả id bình luận lẫn id tài khoản")

	replies := repliesOfFilter(commentID)
	assert.Equal(t, bson.M{"parentId": commentID}, replies,
		"filter trả lời chỉ được khớp theo parentId, không đụng bình luận gốc khác")
}
