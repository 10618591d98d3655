package task_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/internal/mocks"
	"github.com/device-management-toolkit/redfish-sync/internal/usecase/task"
	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
	"github.com/device-management-toolkit/redfish-sync/pkg/redfishclient"
)

const tasksURI = "/redfish/v1/TaskService/Tasks"

var errPatch = errors.New("patch refused")

func body(s string) *redfishclient.Response {
	return &redfishclient.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: []byte(s)}
}

func taskJSON(id, state, target string) string {
	return `{"@odata.id":"/redfish/v1/TaskService/Tasks/` + id + `","Id":"` + id + `","TaskState":"` + state +
		`","Payload":{"HttpOperation":"PATCH","TargetUri":"` + target + `","JsonBody":"{\"A\":1}"}}`
}

func expectWriteBack(t *testing.T, client *mocks.MockClient, id, want string) *gomock.Call {
	t.Helper()

	return client.EXPECT().Patch(gomock.Any(), "/redfish/v1/TaskService/Tasks/"+id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, b []byte) (*redfishclient.Response, error) {
			assert.JSONEq(t, want, string(b))

			return body(`{}`), nil
		})
}

func initDispatcher(t *testing.T, opts ...task.Option) (*task.Dispatcher, *task.Registry, *mocks.MockClient, *gomock.Controller) {
	t.Helper()

	ctl := gomock.NewController(t)
	client := mocks.NewMockClient(ctl)
	registry := task.NewRegistry()

	return task.NewDispatcher(client, registry, logger.New("error"), opts...), registry, client, ctl
}

func TestDispatchFollowsMembers(t *testing.T) {
	t.Parallel()

	d, registry, client, ctl := initDispatcher(t)
	handler := mocks.NewMockTaskHandler(ctl)
	require.NoError(t, registry.Register("/redfish/v1/Systems/1/Bios", false, handler))

	client.EXPECT().Get(gomock.Any(), tasksURI).Return(body(`{"Members":[
		{"@odata.id":"/redfish/v1/TaskService/Tasks/1"},
		{"@odata.id":"/redfish/v1/TaskService/Tasks/2"},
		{"@odata.id":"/redfish/v1/TaskService/Tasks/3"}]}`), nil)
	client.EXPECT().Get(gomock.Any(), "/redfish/v1/TaskService/Tasks/1").
		Return(body(taskJSON("1", "Completed", "/redfish/v1/Systems/1/Bios")), nil)
	client.EXPECT().Get(gomock.Any(), "/redfish/v1/TaskService/Tasks/2").
		Return(body(taskJSON("2", "Running", "/redfish/v1/Systems/1/Bios")), nil)
	client.EXPECT().Get(gomock.Any(), "/redfish/v1/TaskService/Tasks/3").
		Return(body(taskJSON("3", "New", "/redfish/v1/Chassis/1")), nil)

	handler.EXPECT().HandleTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *entity.TaskRequest) entity.TaskResult {
			assert.Equal(t, "2", req.TaskID)
			assert.Equal(t, "PATCH", req.Operation)
			assert.Equal(t, `{"A":1}`, string(req.JSONBody))

			return entity.TaskCompleted
		}).Times(1)
	expectWriteBack(t, client, "2", `{"TaskState":"Completed","TaskStatus":"OK"}`)

	summary, err := d.Dispatch(context.Background(), tasksURI)
	require.NoError(t, err)
	assert.Equal(t, task.Summary{Seen: 3, Inactive: 1, Unrouted: 1, Handled: 1}, *summary)
	assert.Equal(t, 0, d.Tracked())
}

func TestDispatchExpanded(t *testing.T) {
	t.Parallel()

	d, registry, client, ctl := initDispatcher(t, task.WithExpand(true))
	handler := mocks.NewMockTaskHandler(ctl)
	require.NoError(t, registry.Register("SecureBootDatabases", true, handler))

	client.EXPECT().Get(gomock.Any(), tasksURI+"?$expand=.($levels=1)").Return(body(`{"Members":[`+
		taskJSON("4", "Pending", "/redfish/v1/Systems/1/SecureBoot/SecureBootDatabases/db")+`,`+
		taskJSON("5", "Cancelled", "/redfish/v1/Systems/1/SecureBoot/SecureBootDatabases/db")+`]}`), nil)

	handler.EXPECT().HandleTask(gomock.Any(), gomock.Any()).Return(entity.TaskFailed)
	expectWriteBack(t, client, "4", `{"TaskState":"Exception","TaskStatus":"Critical"}`)

	summary, err := d.Dispatch(context.Background(), tasksURI)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Handled)
	assert.Equal(t, 1, summary.Inactive)
}

func TestDispatchContinuesPastBadTasks(t *testing.T) {
	t.Parallel()

	d, registry, client, ctl := initDispatcher(t, task.WithExpand(true))
	handler := mocks.NewMockTaskHandler(ctl)
	require.NoError(t, registry.Register("/redfish/v1/Systems/1/Bios", false, handler))

	client.EXPECT().Get(gomock.Any(), tasksURI+"?$expand=.($levels=1)").Return(body(`{"Members":[
		{"TaskState":"New","Payload":{"TargetUri":"/redfish/v1/Systems/1/Bios"}},`+
		taskJSON("6", "Starting", "/redfish/v1/Systems/1/Bios")+`,`+
		taskJSON("7", "Running", "/redfish/v1/Systems/1/Bios")+`]}`), nil)

	handler.EXPECT().HandleTask(gomock.Any(), gomock.Any()).Return(entity.TaskCompleted).Times(2)
	client.EXPECT().Patch(gomock.Any(), "/redfish/v1/TaskService/Tasks/6", gomock.Any()).Return(nil, errPatch)
	expectWriteBack(t, client, "7", `{"TaskState":"Completed","TaskStatus":"OK"}`)

	summary, err := d.Dispatch(context.Background(), tasksURI)
	require.ErrorIs(t, err, task.ErrMalformedTask)
	require.ErrorIs(t, err, errPatch)
	assert.Equal(t, 2, summary.Failed)
	assert.Equal(t, 2, summary.Handled)
}

type reportingHandler struct {
	d   *task.Dispatcher
	err error
}

func (h *reportingHandler) HandleTask(ctx context.Context, req *entity.TaskRequest) entity.TaskResult {
	h.err = h.d.ReportMessage(ctx, req.TaskID, entity.MessageCannotFinish, "Critical")

	return entity.TaskFailed
}

func TestReportMessage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	d, registry, client, _ := initDispatcher(t, task.WithExpand(true))
	handler := &reportingHandler{d: d}
	require.NoError(t, registry.Register("/redfish/v1/Systems/1/Bios", false, handler))

	client.EXPECT().Get(gomock.Any(), tasksURI+"?$expand=.($levels=1)").
		Return(body(`{"Members":[`+taskJSON("8", "New", "/redfish/v1/Systems/1/Bios")+`]}`), nil)

	gomock.InOrder(
		expectWriteBack(t, client, "8", `{"Messages":[{"Message":"Cannot finish request","MessageSeverity":"Critical"}]}`),
		expectWriteBack(t, client, "8", `{"TaskState":"Exception","TaskStatus":"Critical"}`),
	)

	_, err := d.Dispatch(ctx, tasksURI)
	require.NoError(t, err)
	require.NoError(t, handler.err)

	require.ErrorIs(t, d.ReportMessage(ctx, "8", "late", "OK"), task.ErrNotFound)
}

func TestDispatchCollectionUnreachable(t *testing.T) {
	t.Parallel()

	d, _, client, _ := initDispatcher(t)
	client.EXPECT().Get(gomock.Any(), tasksURI).Return(nil, errPatch)

	_, err := d.Dispatch(context.Background(), tasksURI)
	require.ErrorIs(t, err, errPatch)
}
