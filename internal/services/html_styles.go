package services

// Inline stylesheets for the seven HTML layouts. Each document embeds exactly
// one of these plus sharedSectionCSS; no external resources are fetched.

const oneColumnCSS = `
    body {
        font-family: 'Space Grotesk', 'Segoe UI', sans-serif;
        margin: 0;
        background: radial-gradient(circle at 10% 10%, rgba(56,189,248,0.15), transparent 30%),
            radial-gradient(circle at 85% 0%, rgba(236,72,153,0.18), transparent 28%),
            #030712;
        color: #e2e8f0;
        min-height: 100vh;
    }
    body::before {
        content: '';
        position: fixed;
        inset: 0;
        background: linear-gradient(120deg, rgba(15,23,42,0.9), rgba(2,6,23,0.8));
        pointer-events: none;
        z-index: -1;
    }
    .cv {
        max-width: 1040px;
        margin: 32px auto 48px;
        background: rgba(6,11,30,0.85);
        border-radius: 28px;
        padding: 32px;
        box-shadow: 0 30px 60px rgba(2,6,23,0.65), 0 12px 20px rgba(59,130,246,0.25);
        border: 1px solid rgba(59,130,246,0.35);
    }
    .hero {
        display: grid;
        grid-template-columns: 1fr auto;
        gap: 32px;
        align-items: center;
        padding: 36px;
        border-radius: 22px;
        background: linear-gradient(135deg, rgba(14,165,233,0.25), rgba(79,70,229,0.3));
        border: 1px solid rgba(255,255,255,0.4);
        position: relative;
        overflow: hidden;
    }
    .hero::after {
        content: '';
        position: absolute;
        inset: 0;
        background: radial-gradient(circle at 30% 20%, rgba(236,72,153,0.4), transparent 45%),
            radial-gradient(circle at 80% 20%, rgba(14,165,233,0.4), transparent 50%),
            radial-gradient(circle at 50% 120%, rgba(59,130,246,0.2), transparent 60%);
        opacity: 0.8;
        pointer-events: none;
    }
    .hero > * { position: relative; z-index: 1; }
    .hero h1 {
        margin: 0;
        font-size: clamp(38px, 4vw, 48px);
        letter-spacing: 0.12em;
        text-transform: uppercase;
    }
    .hero .headline { margin: 14px 0 2px; font-size: 17px; color: #e0e7ff; }
    .hero-meta {
        margin-top: 18px;
        font-size: 14px;
        line-height: 1.6;
        background: rgba(15,23,42,0.65);
        border-radius: 12px;
        padding: 12px 16px;
        border: 1px solid rgba(255,255,255,0.2);
    }
    .hero-meta strong { color: #bfdbfe; }
    .hero-meta a { color: #7dd3fc; text-decoration: none; font-weight: 600; }
    .content {
        margin-top: 28px;
        display: grid;
        grid-template-columns: repeat(auto-fit, minmax(280px, 1fr));
        gap: 22px;
    }
    .section-block {
        background: rgba(15,23,42,0.7);
        border-radius: 18px;
        padding: 24px;
        border: 1px solid rgba(59,130,246,0.25);
        min-height: 200px;
    }
    .section-block:nth-child(odd) { border-color: rgba(236,72,153,0.35); }
    p { line-height: 1.7; color: #e2e8f0; }
    .section-heading h2 { color: #f8fafc; }
    ul { margin-top: 12px; padding-left: 22px; color: #e2e8f0; }
    li { margin-bottom: 6px; }
    a { color: #38bdf8; }
    @media (max-width: 640px) {
        .cv { padding: 18px; }
        .hero { padding: 24px; grid-template-columns: 1fr; text-align: center; }
    }
`

const oneColumnMinimalCSS = `
    body { font-family: 'Segoe UI', sans-serif; background: #f8fafc; margin: 0; padding: 20px; color: #1e293b; }
    .cv { max-width: 840px; margin: auto; background: #ffffff; border-left: 6px solid #1e3a5f; padding: 24px 28px; }
    h1 { letter-spacing: 0.8px; margin-bottom: 4px; color: #0f172a; }
    h2 { margin-top: 20px; color: #1e40af; border-bottom: 1px solid #cbd5e1; padding-bottom: 4px; }
    .meta { color: #64748b; margin-top: -6px; }
    .job { margin-bottom: 14px; }
    ul { margin-top: 8px; }
    a { color: #1d4ed8; }
    .referees-list { margin-top: 10px; padding-left: 0; }
    .referees-list li { margin-bottom: 8px; list-style: none; }
    .referee-contact, .referee-title { display: block; font-size: 12px; color: #475569; }
`

const twoColumnCSS = `
    body { font-family: 'Segoe UI', Arial, sans-serif; background: #e9eef5; margin: 0; padding: 24px; color: #1f2937; }
    .cv { max-width: 1100px; margin: auto; background: #ffffff; border-radius: 10px; overflow: hidden; box-shadow: 0 8px 20px rgba(30,58,95,0.14); }
    .header { padding: 28px 32px; border-bottom: 1px solid #cbd5e1; background: linear-gradient(135deg, #1e3a5f, #274c77); color: #f8fafc; }
    .header-grid { display: grid; grid-template-columns: 2fr 1fr; gap: 20px; align-items: end; }
    .header-main h1 { margin: 0; font-size: 34px; line-height: 1.05; letter-spacing: 0.6px; color: #ffffff; }
    .headline { margin: 8px 0 0 0; font-size: 15px; color: #dbeafe; font-weight: 500; }
    .header-contact { background: rgba(255,255,255,0.12); border: 1px solid rgba(255,255,255,0.24); border-radius: 8px; padding: 10px 12px; font-size: 13px; }
    .header-contact p { margin: 0 0 6px 0; line-height: 1.4; color: #f8fafc; }
    .header-contact strong, .header-contact a { color: #ffffff; }
    .grid { display: grid; grid-template-columns: 1.85fr 1fr; gap: 20px; padding: 24px; }
    .main-panel { background: #ffffff; border: 1px solid #dbe5f0; border-radius: 8px; padding: 16px 18px; }
    .side-panel { background: #f8fbff; border: 1px solid #d6e3f2; border-radius: 8px; padding: 16px 16px; }
    h2 { margin: 0 0 10px 0; color: #1e3a5f; border-bottom: 2px solid #bfdbfe; padding-bottom: 4px; font-size: 22px; }
    h4 { margin: 0 0 4px 0; color: #0f172a; }
    p { line-height: 1.45; }
    ul { margin: 8px 0 12px 18px; padding: 0; }
    li { margin-bottom: 6px; }
    .meta { color: #475569; margin-top: -4px; }
    .job { margin-bottom: 14px; }
    a { color: #93c5fd; }
    .grid a { color: #1d4ed8; }
    .referees-list { margin-top: 8px; padding-left: 0; }
    .referees-list li { margin-bottom: 6px; list-style: none; }
    .referee strong { display: block; font-size: 15px; }
    .referee-contact, .referee-title { display: block; font-size: 13px; color: #475569; }
`

const twoColumnSidebarCSS = `
    body { font-family: 'Calibri', 'Segoe UI', sans-serif; margin: 0; background: #e6edf5; padding: 24px; color: #1f2937; }
    .cv { max-width: 1100px; margin: auto; display: grid; grid-template-columns: 1fr 2fr; background: #ffffff; box-shadow: 0 8px 20px rgba(15,23,42,0.15); }
    .sidebar { background: linear-gradient(180deg, #1e293b, #0f172a); color: #f8fafc; padding: 24px; }
    .content { padding: 24px; }
    .sidebar h1 { color: #ffffff; }
    .sidebar h2 { color: #bfdbfe; border-bottom: 1px solid #475569; }
    h2 { color: #1e3a5f; border-bottom: 2px solid #bfdbfe; padding-bottom: 4px; }
    .meta { color: #64748b; margin-top: -6px; }
    .job { margin-bottom: 14px; }
    .sidebar a { color: #93c5fd; }
    .content a { color: #1d4ed8; }
    .referees-list { margin-top: 12px; padding-left: 0; }
    .referees-list li { margin-bottom: 10px; list-style: none; }
    .referee strong { display: block; font-size: 15px; }
    .referee-contact, .referee-title { display: block; font-size: 12px; color: #dbeafe; }
`

const twoColumnSidebarSkillsCSS = `
    body { font-family: 'Inter', 'Segoe UI', sans-serif; margin: 0; background: #f0f2f5; padding: 32px; color: #0f172a; }
    .cv { max-width: 1120px; margin: auto; background: #ffffff; display: grid; grid-template-columns: 0.95fr 1.7fr; border-radius: 18px; box-shadow: 0 18px 40px rgba(15,23,42,0.18); overflow: hidden; }
    .sidebar { background: linear-gradient(180deg, #0f172a, #1f2937); color: #f8fafc; padding: 36px 32px; display: flex; flex-direction: column; gap: 14px; min-height: 420px; }
    .sidebar h1 { margin: 0; font-size: 34px; letter-spacing: 0.5px; }
    .sidebar .headline { color: #cbd5ff; font-weight: 500; margin-top: 6px; margin-bottom: 12px; }
    .contact-block { font-size: 13px; line-height: 1.6; }
    .contact-block strong { display: block; color: #94a3b8; font-size: 10px; letter-spacing: 0.4px; text-transform: uppercase; margin-top: 12px; }
    .contact-block span { color: #f0f4ff; }
    .sidebar-section { margin-top: 18px; }
    .sidebar-section h2 { font-size: 12px; letter-spacing: 0.6px; text-transform: uppercase; color: #94a3b8; margin-bottom: 6px; }
    .sidebar-section ul { margin: 0; padding-left: 16px; }
    .sidebar-section li { margin-bottom: 6px; line-height: 1.4; color: #f1f5f9; }
    .links { margin-top: auto; font-size: 14px; line-height: 1.7; }
    .links a { color: #60a5fa; text-decoration: none; margin-right: 12px; }
    .links a:last-child { margin-right: 0; }
    .content { padding: 36px; display: flex; flex-direction: column; gap: 24px; }
    .section-block { border-bottom: 1px solid #e2e8f0; padding-bottom: 10px; }
    .section-block h2 { margin-bottom: 10px; font-size: 22px; color: #0f172a; }
    .job { margin-bottom: 12px; }
    .job h4 { margin: 0; }
    .meta { color: #475569; margin-bottom: 8px; }
    .referees-list { margin: 0 0 8px 0; padding-left: 0; }
    .referee { list-style: none; margin-bottom: 10px; }
    .referee strong { display: block; font-size: 15px; }
    .referee-contact, .referee-title { display: block; font-size: 13px; color: #f1f5f9; }
`

const twoColumnAccentCSS = `
    body { font-family: 'Inter', 'Segoe UI', sans-serif; margin: 0; background: #f5f7fb; padding: 32px; }
    .cv { max-width: 960px; margin: auto; background: #ffffff; border-radius: 22px; box-shadow: 0 20px 45px rgba(15,23,42,0.25); overflow: hidden; }
    .hero { background: linear-gradient(135deg, #102a43, #1e3a8a); color: #f8fafc; padding: 36px 40px; display: grid; grid-template-columns: 2fr 1fr; gap: 24px; align-items: end; }
    .hero h1 { margin: 0; font-size: 36px; letter-spacing: 0.6px; }
    .hero .headline { margin: 6px 0 0; font-size: 16px; color: #cbd5f5; }
    .hero-meta { font-size: 14px; line-height: 1.6; }
    .hero-meta strong { display: block; color: #cbd5f5; text-transform: uppercase; letter-spacing: 0.5px; font-size: 10px; margin-top: 10px; }
    .hero-links { margin-top: 12px; }
    .hero-links a { color: #bae6fd; margin-right: 12px; font-weight: 600; text-decoration: none; }
    .main { padding: 36px; display: grid; grid-template-columns: 1.7fr 0.9fr; gap: 24px; }
    .main-panel { border-right: 1px solid #e5e7eb; padding-right: 24px; }
    .aside-panel { padding-left: 24px; }
    .main-panel h2, .aside-panel h2 { margin-top: 0; color: #0f172a; font-size: 22px; border-bottom: 2px solid #e2e8f0; padding-bottom: 6px; margin-bottom: 14px; }
    .main-panel .job { margin-bottom: 12px; }
    .main-panel .meta { color: #475569; margin-bottom: 8px; }
    .aside-panel ul { margin: 0; padding-left: 18px; line-height: 1.6; }
    .aside-panel li { margin-bottom: 6px; }
`

const twoColumnSlateCSS = `
    body { font-family: 'Source Sans Pro', 'Segoe UI', sans-serif; margin: 0; background: #eceef1; color: #111827; }
    .cv { max-width: 1100px; margin: 32px auto; background: #ffffff; border: 1px solid #d1d5da; box-shadow: 0 25px 50px rgba(15,23,42,0.2); }
    .name-banner { padding: 24px 38px; border-bottom: 1px solid #d6d8dc; display: flex; justify-content: center; }
    .name-banner h1 { margin: 0; font-size: 34px; letter-spacing: 6px; text-transform: uppercase; color: #111827; }
    .layout { display: grid; grid-template-columns: 0.95fr 1.55fr; }
    .sidebar { background: #f1f3f5; padding: 32px 30px; border-right: 1px solid #d6d8dc; display: flex; flex-direction: column; gap: 28px; }
    .sidebar h3 { margin: 0 0 14px 0; font-size: 12px; letter-spacing: 2px; text-transform: uppercase; color: #4b5563; }
    .detail-row { display: flex; justify-content: space-between; margin-bottom: 6px; font-size: 14px; }
    .detail-label { font-weight: 600; color: #4b5563; }
    .detail-value { text-align: right; }
    .sidebar ul { margin: 0; padding-left: 18px; }
    .sidebar li { margin-bottom: 6px; line-height: 1.5; color: #1f2937; }
    .sidebar-section { border-top: 1px solid #d6d8dc; padding-top: 18px; }
    .main-area { padding: 36px 42px; }
    .main-area h2 { margin-top: 0; font-size: 20px; letter-spacing: 2px; text-transform: uppercase; color: #111827; border-bottom: 1px solid #e2e8f0; padding-bottom: 8px; }
    .summary { font-size: 15px; line-height: 1.7; color: #1f2937; margin-bottom: 24px; }
    .section-body { margin-top: 18px; }
    .section-body .job { margin-bottom: 18px; }
    .section-body h4 { margin: 0; font-size: 16px; color: #111827; }
    .section-body .meta { font-size: 13px; color: #64748b; margin-top: 4px; }
    .main-area ul { padding-left: 20px; }
    .links-row { margin-top: 14px; font-size: 13px; color: #111827; letter-spacing: 0.4px; }
    .referees-list { margin-top: 18px; padding-left: 0; }
    .referee { list-style: none; margin-bottom: 10px; }
    .referee strong { display: block; font-size: 16px; letter-spacing: 1px; }
    .referee-contact, .referee-title { display: block; font-size: 13px; color: #4b5563; margin-top: 4px; }
    .divider { height: 1px; background: #e2e8f0; margin: 32px 0 18px; }
`

const sharedSectionCSS = `
    .section-heading { display: flex; align-items: center; gap: 10px; margin-bottom: 10px; }
    .section-heading h2 { margin: 0; font-size: 20px; letter-spacing: 0.1em; text-transform: uppercase; font-weight: 600; }
    .section-icon { font-size: 20px; }
    .experience-header { display: flex; justify-content: space-between; align-items: baseline; gap: 12px; }
    .experience-period { font-size: 13px; color: #475569; }
    .experience-org { font-size: 14px; color: #1f2937; margin-bottom: 6px; }
    .education-entry { padding: 10px 12px; border-left: 3px solid #1d4ed8; margin-bottom: 10px; background: rgba(29,78,216,0.06); border-radius: 4px; }
    .education-top { display: flex; justify-content: space-between; font-size: 14px; font-weight: 600; }
    .education-course { display: inline-flex; gap: 6px; }
    .education-timeline { font-size: 12px; color: #475569; }
    .education-institution { font-size: 13px; color: #0f172a; margin-top: 4px; }
    .referee { margin-bottom: 10px; padding-bottom: 10px; border-bottom: 1px dashed rgba(15,23,42,0.1); }
    .referee-head { display: flex; flex-direction: column; gap: 2px; }
    .referee-name { font-weight: 600; }
    .referee-org { font-size: 13px; color: #475569; }
    .referee-meta { margin-top: 4px; display: flex; flex-wrap: wrap; gap: 12px; font-size: 12px; color: #1f2937; }
    .referee-field { display: inline-flex; align-items: center; gap: 4px; padding-right: 8px; }
`
