package landing

import "github.com/newdev/autoflow/internal/features/contact"

// Meta is the document head copy.
type Meta struct {
	Title       string
	Description string
	Lang        string
}

type PainPoint struct {
	Icon  string
	Title string
	Body  string
}

type Product struct {
	Num         int
	Accent      string // check icon color
	NumClass    string
	Title       string
	Description string
	Features    []string
	Reverse     bool
}

type Step struct {
	Num   int
	Title string
	Desc  string
}

type PricingPlan struct {
	Title    string
	Price    string
	Note     string
	Features []string
	CTA      string
	Featured bool
}

type FAQItem struct {
	Question string
	Answer   string
}

// SolutionGroup is one <optgroup> of the inquiry form.
type SolutionGroup struct {
	Label     string
	Solutions []contact.Solution
}

// Content is everything the landing template renders.
type Content struct {
	Meta           Meta
	KakaoURL       string
	PainPoints     []PainPoint
	Products       []Product
	Steps          []Step
	Pricing        []PricingPlan
	FAQ            []FAQItem
	SolutionGroups []SolutionGroup
	Year           int
}

// DefaultContent returns the AutoFlow marketing copy.
func DefaultContent() Content {
	return Content{
		Meta: Meta{
			Title:       "AutoFlow - 네이버 블로그 & 카페 마케팅 자동화",
			Description: "네이버 블로그 원고 편집, 블로거 수집, 카페 포스팅까지. 블로그 마케팅에 필요한 모든 자동화를 한곳에서.",
			Lang:        "ko",
		},
		KakaoURL: "https://pf.kakao.com/_gSShX",
		PainPoints: []PainPoint{
			{Icon: "⏳", Title: "원고 작성에 걸리는 시간", Body: "금지어 확인, 글자수 체크, 키워드 배치를 수동으로 하다 보면 원고 하나에 시간이 과하게 소요됩니다."},
			{Icon: "🔍", Title: "블로거 찾기가 막막", Body: "계정을 수급하려면 블로거를 일일이 검색해서 연락처를 찾아야 하는 번거로움이 있습니다."},
			{Icon: "📝", Title: "카페 포스팅 반복 작업", Body: "여러 카페에 글/댓글을 수동으로 반복 등록하고, IP 차단 걱정에 계정 관리까지. 시간과 리스크가 모두 큽니다."},
		},
		Products: []Product{
			{
				Num: 1, Accent: "#03C75A", NumClass: "num-green",
				Title:       "네이버 블로그 솔루션 프로그램",
				Description: "블로그 포스팅 작성을 도와주는 올인원 에디터. 금지어 탐지부터 키워드 관리, 경쟁 분석까지.",
				Features: []string{
					"실시간 글자수 계산 & 목표 달성률 표시",
					"네이버 금지어 자동 탐지 & 대체어 일괄 치환",
					"목표 키워드 보호 (치환에서 자동 제외)",
					"이미지/동영상 리소스 관리 & 플레이스홀더",
					"인기글 분석 & 블로그 점수 산출 & 경쟁 분석",
					"타이핑 시간 자동 측정",
				},
			},
			{
				Num: 2, Accent: "#2563EB", NumClass: "num-blue", Reverse: true,
				Title:       "고성능 네이버 블로그 DB 수집기",
				Description: "키워드로 블로거 정보/연락처 자동 수집",
				Features: []string{
					"키워드 기반 블로그 검색 (최대 100건)",
					"연관 키워드 자동 확장 검색",
					"블로그 생성일, 포스팅 수, 검색 순위 수집",
					"전화번호 / 이메일 / 카카오톡 연락처 자동 추출",
					"수집 데이터 테이블 뷰 & 실시간 로그",
				},
			},
			{
				Num: 3, Accent: "#7C3AED", NumClass: "num-purple",
				Title:       "네이버 카페 포스팅 자동화",
				Description: "여러 카페에 게시물과 댓글을 자동으로 작성하는 데스크톱 프로그램. 키워드 템플릿, IP 자동 변경, 이미지 미세조정까지.",
				Features: []string{
					"다중 카페 동시 포스팅 & 댓글/대댓글 자동 작성",
					"{{keyword}} 템플릿으로 동적 제목/본문 생성",
					"이미지 랜덤 삽입 + 밝기/대비/채도 미세조정 (중복 감지 방지)",
					"네이버 지도 자동 삽입 & 폰트 컬러 변경",
					"USB 테더링 IP 자동 로테이션 (차단 방지)",
					"포스팅용/댓글용 계정 분리 & 엑셀 일괄 관리",
					"실시간 진행 모니터링 (Windows & macOS 지원)",
				},
			},
		},
		Steps: []Step{
			{Num: 1, Title: "문의 접수", Desc: "필요한 솔루션을 선택하고 문의를 남겨주세요."},
			{Num: 2, Title: "상담 & 견적", Desc: "업무 환경을 파악하고 맞춤 견적을 안내드립니다."},
			{Num: 3, Title: "설치 & 세팅", Desc: "프로그램 설치와 초기 환경 세팅을 도와드립니다."},
			{Num: 4, Title: "자동화 운영", Desc: "세팅 완료 후 바로 사용을 시작합니다."},
		},
		Pricing: []PricingPlan{
			{Title: "단일 솔루션", Price: "개별 문의", Note: "필요한 프로그램 1개 구매", CTA: "구매 문의",
				Features: []string{"원하는 솔루션 1개 선택", "설치 가이드 제공", "1개월 무상 지원"}},
			{Title: "올인원 패키지", Price: "맞춤 견적", Note: "3개 솔루션 패키지 할인", CTA: "패키지 상담", Featured: true,
				Features: []string{"블로그 솔루션 + 수집기 + 카페 포스팅", "패키지 할인 적용", "우선 기술 지원", "기본 커스터마이징 포함"}},
			{Title: "맞춤 제작", Price: "별도 견적", Note: "원하는 자동화를 새로 개발", CTA: "제작 문의",
				Features: []string{"신규 자동화 프로그램 개발", "기존 프로그램 커스터마이징", "업무 프로세스 분석 포함", "전담 개발자 배정"}},
		},
		FAQ: []FAQItem{
			{"개발 지식이 없어도 사용할 수 있나요?", "네. 설치 가이드와 초기 세팅을 도와드리며, 이후에는 별도의 개발 지식 없이 바로 사용하실 수 있습니다."},
			{"프로그램은 어떤 환경에서 동작하나요?", "Windows와 macOS 환경 모두 지원합니다. 상담 시 운영체제에 맞는 설치 파일을 안내드립니다."},
			{"블로거 수집기로 어떤 정보를 수집할 수 있나요?", "블로그 제목, URL, ID, 생성일자, 포스팅 수, 검색 순위 등의 기본 정보와 함께 전화번호, 이메일, 카카오톡 오픈채팅 등 공개된 연락처를 자동으로 추출합니다."},
			{"블로그 원고 편집기의 금지어 목록을 직접 수정할 수 있나요?", "네. 기본 금지어 목록이 제공되며, 직접 금지어를 추가하거나 파일로 업로드하여 커스터마이징할 수 있습니다. 대체어 매핑도 자유롭게 설정 가능합니다."},
			{"카페 포스팅 자동화 사용 시 IP 차단이 걱정됩니다.", "Android USB 테더링을 통한 IP 자동 로테이션 기능이 내장되어 있습니다. 키워드를 일정 단위로 나누어 처리할 때마다 IP가 자동 변경되며, 카페 간 랜덤 대기 시간(30~90초)도 적용되어 차단 위험을 최소화합니다."},
			{"커스터마이징이나 추가 기능 개발도 가능한가요?", "네. 기존 솔루션의 커스터마이징뿐 아니라, 새로운 자동화 프로그램 제작도 가능합니다. 맞춤 제작 문의를 통해 상담해 주세요."},
			{"구매 후 기술 지원은 어떻게 되나요?", "구매 후 1개월간 무상 기술 지원을 제공합니다. 이후에도 유지보수 계약을 통해 지속적인 지원을 받으실 수 있으며, 카카오톡 채널로 빠르게 문의하실 수 있습니다."},
		},
		SolutionGroups: groupSolutions(contact.Solutions()),
		Year:           2026,
	}
}

// groupSolutions keeps catalog order, both across and within groups.
func groupSolutions(list []contact.Solution) []SolutionGroup {
	var groups []SolutionGroup
	index := map[string]int{}
	for _, s := range list {
		i, ok := index[s.Group]
		if !ok {
			i = len(groups)
			index[s.Group] = i
			groups = append(groups, SolutionGroup{Label: s.Group})
		}
		groups[i].Solutions = append(groups[i].Solutions, s)
	}
	return groups
}
