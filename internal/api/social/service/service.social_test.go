// Package socialsvc - Test builder pipeline lịch sử xem và kênh đã đăng ký.
package socialsvc

import (
	"testing"

	"meta_tube/internal/global"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setTestColNames() {
	global.MongoDB_ColNames = global.MongoDB_CollectionName{
		Users:         "users",
		Images:        "images",
		Videos:        "videos",
		Subscriptions: "subscriptions",
	}
}

func TestBuildWatchHistoryBasePipeline_KhongCoSearch(t *testing.T) {
	setTestColNames()
	accountID := primitive.NewObjectID()
	pipeline := buildWatchHistoryBasePipeline(accountID, "")
	require.Len(t, pipeline, 4)

	assert.Equal(t, bson.M{"$match": bson.M{"accountId": accountID}}, pipeline[0])

	lookup := pipeline[1]["$lookup"].(bson.M)
	assert.Equal(t, "videos", lookup["from"])
	assert.Equal(t, "video", lookup["as"])

	assert.Equal(t, bson.M{"$unwind": "$video"}, pipeline[2], "video đã xóa phải bị loại khỏi lịch sử")
	assert.Equal(t, bson.M{"$sort": bson.M{"updatedAt": -1}}, pipeline[3], "lịch sử phải xem gần nhất trước")
}

func TestBuildWatchHistoryBasePipeline_SearchNamTrongPipelineGoc(t *testing.T) {
	setTestColNames()
	accountID := primitive.NewObjectID()
	pipeline := buildWatchHistoryBasePipeline(accountID, "golang (căn bản)")
	require.Len(t, pipeline, 5)

	// Lọc tiêu đề phải nằm SAU join video và TRONG pipeline gốc:
	// nhánh đếm dùng lại pipeline gốc nên total luôn khớp danh sách đã lọc
	match, ok := pipeline[3]["$match"].(bson.M)
	require.True(t, ok, "stage lọc tiêu đề phải nằm ngay sau unwind video")

	re, ok := match["video.title"].(primitive.Regex)
	require.True(t, ok, "lọc tiêu đề phải trên field video.title sau join")
	assert.Equal(t, "i", re.Options)
	assert.Contains(t, re.Pattern, `\(căn`, "ký tự regex trong query phải được quote")

	assert.Equal(t, bson.M{"$sort": bson.M{"updatedAt": -1}}, pipeline[4])
}

func TestVideoEdgeStages_FlattenVideoVaGanMocThoiGian(t *testing.T) {
	setTestColNames()
	stages := videoEdgeStages("viewedAt", "$updatedAt", "h", "/p")
	require.NotEmpty(t, stages)

	replaceRoot, ok := stages[0]["$replaceRoot"].(bson.M)
	require.True(t, ok, "stage đầu phải flatten document video lên root")

	merge, ok := replaceRoot["newRoot"].(bson.M)
	require.True(t, ok)
	parts, ok := merge["$mergeObjects"].(bson.A)
	require.True(t, ok)
	require.Len(t, parts, 2)
	assert.Equal(t, "$video", parts[0])
	assert.Equal(t, bson.M{"viewedAt": "$updatedAt"}, parts[1], "mốc thời gian của edge phải được giữ lại trên video")

	last := stages[len(stages)-1]
	project, ok := last["$project"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, 0, project["author.password"], "field nhạy cảm của tác giả phải bị strip")
}

func TestBuildSubscribedChannelsBasePipeline(t *testing.T) {
	setTestColNames()
	accountID := primitive.NewObjectID()
	pipeline := buildSubscribedChannelsBasePipeline(accountID)
	require.GreaterOrEqual(t, len(pipeline), 2)

	match := pipeline[0]["$match"].(bson.M)
	assert.Equal(t, accountID, match["fromAccountId"], "danh sách đăng ký phải lọc theo người đăng ký")

	assert.Equal(t, bson.M{"$sort": bson.M{"createdAt": -1}}, pipeline[1], "đăng ký gần nhất phải đứng trước")
}
