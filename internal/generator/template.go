package generator

import (
	"fmt"
	"strings"

	"contentgen/internal/services"
	"contentgen/internal/textutil"
)

// Variant selects one of the fixed lesson HTML shells.
type Variant string

const (
	VariantCT2022 Variant = "ct2022"
	VariantIT2023 Variant = "it2023"
	// VariantAuto picks a concrete variant from the course code.
	VariantAuto Variant = "auto"
)

// ParseVariant validates a template name from flags or config.
func ParseVariant(name string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(name))); v {
	case VariantCT2022, VariantIT2023, VariantAuto:
		return v, nil
	case "":
		return VariantCT2022, nil
	default:
		return "", services.Wrap(services.ErrConfiguration, "template", "", fmt.Sprintf("unknown template %q (want ct2022, it2023 or auto)", name), nil)
	}
}

// ResolveVariant maps auto to a concrete variant. Course codes look like
// 25itcoms or 25ctvibec: the leading year digits are dropped and an "it"
// prefix selects it2023, anything else ct2022. Concrete variants are
// returned unchanged.
func ResolveVariant(v Variant, courseCode string) Variant {
	if v != VariantAuto {
		return v
	}
	rest := strings.TrimLeft(courseCode, "0123456789")
	if strings.HasPrefix(textutil.Fold(rest), "it") {
		return VariantIT2023
	}
	return VariantCT2022
}

// Render returns the index.html body for a concrete variant. Unknown
// variants render as ct2022.
func Render(v Variant) string {
	if v == VariantIT2023 {
		return it2023HTML
	}
	return ct2022HTML
}

const ct2022HTML = `<!DOCTYPE html>
<html lang="ko">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, user-scalable=no" />
	<meta http-equiv="X-UA-Compatible" content="ie=edge">
	<title>메가존아이티평생교육원</title>
	<script src="../../../resources/scripts/jquery/jquery.js"></script>
	<script src="../../../resources/scripts/vue/vue.min.js"></script>
	<script src="../../../resources/scripts/vue/vue-router.min.js"></script>

	<script src="../../../resources/scripts/2022/templates/layout_ct.js"></script>
	<script src="../../../resources/scripts/2022/templates/defaults.js"></script>
	<script src="../../../resources/scripts/sync.js"></script>

	<link rel="stylesheet" href="../../../resources/scripts/videojs/video-js.min.css">


	<link rel="stylesheet" href="../../../resources/styles/2022/base.css">
	<link rel="stylesheet" href="../../../resources/styles/2022/layout.css">
	<link rel="stylesheet" href="../../../resources/styles/2022/modules.css">
	<link rel="stylesheet" href="../../../resources/styles/2022/mediaquery.css">
	<link rel="stylesheet" href="../../../resources/styles/2022/type-2.css">

	<link rel="stylesheet" media="print" type="text/css" href="../../../resources/styles/print.css">
</head>
<body>
	<div id="app"></div>
	<script src="../../../resources/scripts/app.js"></script>
	<script src="../../../resources/scripts/videojs/video.min.js"></script>

	<script src="../../../resources/scripts/2022/commons_ct.js"></script>
	<script src="../../../resources/scripts/videojs/videojs-contrib-hls.min.js"></script>
	<script src="../../../resources/scripts/videojs/videojs.hotkeys.min.js"></script>
</body>
</html>`

const it2023HTML = `<!DOCTYPE html>
<html lang="ko">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, user-scalable=no" />
	<meta http-equiv="X-UA-Compatible" content="ie=edge">
	<title>메가존아이티평생교육원</title>
	<script src="../../../resources/scripts/jquery/jquery.js"></script>
	<script src="../../../resources/scripts/vue/vue.min.js"></script>
	<script src="../../../resources/scripts/vue/vue-router.min.js"></script>

	<script src="../../../resources/scripts/2022/templates/layout.js"></script>
	<script src="../../../resources/scripts/2022/templates/defaults.js"></script>
	<script src="../../../resources/scripts/sync.js"></script>

	<link rel="stylesheet" href="../../../resources/scripts/videojs/video-js.min.css">

	<link rel="stylesheet" href="../../../resources/styles/2023/base.css">
	<link rel="stylesheet" href="../../../resources/styles/2025/layout.css">
	<link rel="stylesheet" href="../../../resources/styles/2023/modules.css">
	<link rel="stylesheet" href="../../../resources/styles/2023/mediaquery.css">
	<link rel="stylesheet" href="../../../resources/styles/2023/type-1.css">

	<link rel="stylesheet" media="print" type="text/css" href="../../../resources/styles/print.css">
</head>
<body>
<div id="app"></div>
<script src="../../../resources/scripts/app.js"></script>
<script src="../../../resources/scripts/videojs/video.min.js"></script>

<script src="../../../resources/scripts/2022/commons.js"></script>
<script src="../../../resources/scripts/videojs/videojs-contrib-hls.min.js"></script>
<script src="../../../resources/scripts/videojs/videojs.hotkeys.min.js"></script>
</body>
</html>`
