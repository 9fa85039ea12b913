package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// HttpRequestsTotal 请求次数
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memareh_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HttpRequestDuration 响应耗时
	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "memareh_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "path"},
	)

	// ModerationActions 审核操作次数, action = approve|reject|delete|pin|unpin
	ModerationActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memareh_comment_moderation_actions_total",
			Help: "Comment moderation actions performed",
		},
		[]string{"action"},
	)

	// CommentSubmissions 评论提交结果
	CommentSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memareh_comment_submissions_total",
			Help: "Comment submissions by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(HttpRequestsTotal)
	prometheus.MustRegister(HttpRequestDuration)
	prometheus.MustRegister(ModerationActions)
	prometheus.MustRegister(CommentSubmissions)
}
