package dashboard

import (
	"fmt"
	"time"
)

const activityLayout = "03:04 PM"

var mockChannelNames = []string{
	"Frontend Team",
	"Backend Team",
	"DevOps Team",
	"QA Team",
	"Mobile Team",
	"Design Team",
	"Product Team",
	"Data Team",
	"Security Team",
	"Infrastructure Team",
}

var mockSummaries = []string{
	"Team made significant progress on user authentication module. Sarah completed the login flow redesign, while Mike fixed 3 critical bugs in the API endpoints. Planning to deploy to staging tomorrow. No major blockers reported.",
	"Sprint goals are on track. Database optimization reduced query times by 40%. John is working on payment integration, expected completion by Friday. Minor concern with third-party service reliability.",
	"Infrastructure updates completed successfully. CI/CD pipeline improvements reduced deployment time by 30%. Monitoring new auto-scaling policies. One team member mentioned potential capacity issues next week.",
	"Testing coverage improved to 85%. Found 2 regression bugs in the checkout flow, already assigned to developers. Automation suite running smoothly. Team morale is high with good collaboration.",
	"iOS app store review submitted. Android build has performance improvements. React Native upgrade caused minor styling issues, fix in progress. Release candidate ready for internal testing.",
	"User research findings presented to stakeholders. New wireframes for dashboard redesign completed. Usability testing scheduled for next week. Team excited about upcoming feature launches.",
	"Roadmap priorities finalized for Q4. Customer feedback analysis revealed 3 key improvement areas. Working closely with engineering on technical feasibility. Stakeholder alignment looks good.",
	"ML model accuracy improved by 12%. Data pipeline optimization reduced processing time. Working on feature engineering for recommendation system. Need more computational resources for training.",
	"Security audit findings addressed. Vulnerability scanning completed with no critical issues. Team completed security training modules. Preparing for compliance review next month.",
	"Network latency improvements deployed. Server capacity planning for holiday traffic completed. Backup systems tested successfully. Monitoring alerting system upgrades in progress.",
}

var mockMessageCounts = []int{12, 8, 15, 6, 20, 9, 11, 14, 7, 18}

// MockChannels builds the canned ten-channel dataset. intn supplies the
// random member counts and activity times.
func MockChannels(intn func(int) int, now time.Time) []ChannelView {
	channels := make([]ChannelView, 0, len(mockChannelNames))
	for i, name := range mockChannelNames {
		channels = append(channels, ChannelView{
			ID:           fmt.Sprintf("channel-%d", i),
			ChannelID:    fmt.Sprintf("C%d", i),
			ChannelName:  name,
			MessageCount: mockMessageCounts[i],
			MemberCount:  memberCount(intn),
			Status:       HealthStatus(mockMessageCounts[i]),
			Summary:      mockSummaries[i],
			LastActivity: lastActivity(intn, now),
		})
	}
	return channels
}

// memberCount is a placeholder between 3 and 10; the store has no roster.
func memberCount(intn func(int) int) int {
	return intn(8) + 3
}

// lastActivity is a random clock time within the hour before now.
func lastActivity(intn func(int) int, now time.Time) string {
	ago := time.Duration(intn(int(time.Hour/time.Second))) * time.Second
	return now.Add(-ago).Format(activityLayout)
}
