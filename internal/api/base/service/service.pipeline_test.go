// Package basesvc - Test các builder stage aggregation dùng chung.
package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMatchSortLookupUnwind_TaoDungStage(t *testing.T) {
	match := MatchStage(bson.M{"accountId": "x"})
	assert.Equal(t, bson.M{"$match": bson.M{"accountId": "x"}}, match)

	sort := SortStage("createdAt", -1)
	assert.Equal(t, bson.M{"$sort": bson.M{"createdAt": -1}}, sort)

	lookup := LookupStage("users", "accountId", "_id", "author")
	assert.Equal(t, bson.M{"$lookup": bson.M{
		"from":         "users",
		"localField":   "accountId",
		"foreignField": "_id",
		"as":           "author",
	}}, lookup)

	assert.Equal(t, bson.M{"$unwind": "$author"}, UnwindStage("author"))

	preserve := UnwindPreserveStage("replyAccount")
	assert.Equal(t, bson.M{"$unwind": bson.M{
		"path":                       "$replyAccount",
		"preserveNullAndEmptyArrays": true,
	}}, preserve)
}

func TestImageURLExpr_NullChoChuoiRong(t *testing.T) {
	expr := ImageURLExpr("$name", "http://localhost:8080", "/images")

	cond, ok := expr["$cond"].(bson.A)
	require.True(t, ok, "expression phải là $cond")
	require.Len(t, cond, 3)

	assert.Equal(t, bson.M{"$ifNull": bson.A{"$name", false}}, cond[0], "nhánh điều kiện phải kiểm tra null")
	assert.Equal(t, bson.M{"$concat": bson.A{"http://localhost:8080", "/images", "/", "$name"}}, cond[1])
	assert.Equal(t, "", cond[2], "tên file null phải cho ra chuỗi rỗng, không phải null")
}

func TestImageJoinStages_FieldTamKhongChuaDauCham(t *testing.T) {
	stages := ImageJoinStages("images", "author.avatarId", "author.avatar", "h", "/p")
	require.Len(t, stages, 3)

	lookup := stages[0]["$lookup"].(bson.M)
	tmp := lookup["as"].(string)
	assert.NotContains(t, tmp, ".", "field tạm của lookup không được chứa dấu chấm")
	assert.Equal(t, "_img_author_avatar", tmp)
	assert.Equal(t, "author.avatarId", lookup["localField"])

	addFields := stages[1]["$addFields"].(bson.M)
	_, ok := addFields["author.avatar"]
	assert.True(t, ok, "stage thứ hai phải gán URL vào targetField")

	project := stages[2]["$project"].(bson.M)
	assert.Equal(t, bson.M{tmp: 0}, project, "field tạm phải bị project ra khỏi kết quả")
}

func TestStripSensitiveUserFields(t *testing.T) {
	prefixed := StripSensitiveUserFields("author")
	for _, f := range SensitiveUserFields {
		assert.Equal(t, 0, prefixed["author."+f], "thiếu exclusion cho author.%s", f)
	}
	assert.Len(t, prefixed, len(SensitiveUserFields))

	bare := StripSensitiveUserFields("")
	for _, f := range SensitiveUserFields {
		assert.Equal(t, 0, bare[f], "thiếu exclusion cho %s khi không có prefix", f)
	}

	assert.Contains(t, SensitiveUserFields, "password")
	assert.Contains(t, SensitiveUserFields, "token")
	assert.Contains(t, SensitiveUserFields, "forgotPasswordToken")
}

func TestAuthorLookupStages_UnwindBatBuoc(t *testing.T) {
	stages := AuthorLookupStages("users", "images", "accountId", "author", "h", "/p")
	require.GreaterOrEqual(t, len(stages), 2)

	lookup := stages[0]["$lookup"].(bson.M)
	assert.Equal(t, "users", lookup["from"])
	assert.Equal(t, "author", lookup["as"])

	// Unwind bắt buộc: document mất tác giả phải bị loại, không được giữ lại với author null
	assert.Equal(t, bson.M{"$unwind": "$author"}, stages[1])
}

func TestReactionCountStages_ViewerChuaDangNhap(t *testing.T) {
	stages := ReactionCountStages("reactions", "_id", primitive.NilObjectID)
	require.Len(t, stages, 3)

	addFields := stages[1]["$addFields"].(bson.M)
	assert.Equal(t, false, addFields["isLiked"], "khách chưa đăng nhập phải có isLiked literal false")
	assert.Equal(t, false, addFields["isDisliked"], "khách chưa đăng nhập phải có isDisliked literal false")

	// likeCount/dislikeCount vẫn là expression đếm thật
	_, ok := addFields["likeCount"].(bson.M)
	assert.True(t, ok, "likeCount phải là expression")
	_, ok = addFields["dislikeCount"].(bson.M)
	assert.True(t, ok, "dislikeCount phải là expression")

	assert.Equal(t, bson.M{"$project": bson.M{"_reactions": 0}}, stages[2])
}

func TestReactionCountStages_ViewerDaDangNhap(t *testing.T) {
	viewerID := primitive.NewObjectID()
	stages := ReactionCountStages("reactions", "_id", viewerID)
	require.Len(t, stages, 3)

	lookup := stages[0]["$lookup"].(bson.M)
	assert.Equal(t, "reactions", lookup["from"])
	assert.Equal(t, "contentId", lookup["foreignField"])

	addFields := stages[1]["$addFields"].(bson.M)
	_, ok := addFields["isLiked"].(bson.M)
	assert.True(t, ok, "viewer đã đăng nhập phải có isLiked là expression, không phải literal")
	_, ok = addFields["isDisliked"].(bson.M)
	assert.True(t, ok, "viewer đã đăng nhập phải có isDisliked là expression, không phải literal")
}
